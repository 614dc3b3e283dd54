package review

import (
	"context"
	"encoding/json"
	"math"
	"sync/atomic"
	"time"

	"urbpaddle/models"
	"urbpaddle/utils"

	"go.uber.org/zap"
)

const recordKeyPrefix = "review:rec:"

// Gating thresholds.
const (
	minDaysSinceInstall   = 3
	minActions            = 3
	minDaysBetweenPrompts = 30
)

// daysSince counts days between two instants, rounding up. The difference is
// taken absolute so clock skew that moves now before the stored date does not
// blow up the gate.
func daysSince(a, b time.Time) int {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

func recordKey(installationID string) string {
	return recordKeyPrefix + installationID
}

// loadRecord reads the persisted record, falling back to a zero record on
// absence or storage failure. Failures are logged and counted, never raised.
func (s *DefaultReviewService) loadRecord(ctx context.Context, installationID string) models.ReviewRecord {
	var rec models.ReviewRecord

	data, found, err := s.Store.Get(ctx, recordKey(installationID))
	if err != nil {
		atomic.AddInt64(&s.storeErrors, 1)
		utils.GetLogger().Warn("review: record read failed, using defaults",
			zap.String("installation", installationID), zap.Error(err))
		return rec
	}
	if !found {
		return rec
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		atomic.AddInt64(&s.storeErrors, 1)
		utils.GetLogger().Warn("review: record decode failed, using defaults",
			zap.String("installation", installationID), zap.Error(err))
		return models.ReviewRecord{}
	}
	return rec
}

// saveRecord persists the record best-effort. Write failures are swallowed.
func (s *DefaultReviewService) saveRecord(ctx context.Context, installationID string, rec models.ReviewRecord) {
	data, err := json.Marshal(rec)
	if err != nil {
		atomic.AddInt64(&s.storeErrors, 1)
		utils.GetLogger().Warn("review: record encode failed, state not persisted",
			zap.String("installation", installationID), zap.Error(err))
		return
	}
	if err := s.Store.Set(ctx, recordKey(installationID), data); err != nil {
		atomic.AddInt64(&s.storeErrors, 1)
		utils.GetLogger().Warn("review: record write failed, state not persisted",
			zap.String("installation", installationID), zap.Error(err))
	}
}

// Initialize stamps firstLaunchDate exactly once; later calls are no-ops.
func (s *DefaultReviewService) Initialize(ctx context.Context, installationID string, now time.Time) {
	rec := s.loadRecord(ctx, installationID)
	if rec.FirstLaunchDate != nil {
		return
	}
	rec.FirstLaunchDate = &now
	s.saveRecord(ctx, installationID, rec)
}

// RecordAction counts one qualifying user action.
func (s *DefaultReviewService) RecordAction(ctx context.Context, installationID string) {
	rec := s.loadRecord(ctx, installationID)
	rec.ActionCount++
	s.saveRecord(ctx, installationID, rec)
}

// evaluateRecord applies the gating conditions in order, short-circuiting on
// the first failing one. Earlier conditions take precedence.
func (s *DefaultReviewService) evaluateRecord(rec models.ReviewRecord, now time.Time) Decision {
	if !s.Channel.IsAvailable() {
		return Decision{Reason: ReasonUnavailable}
	}
	if rec.HasReviewed {
		return Decision{Reason: ReasonAlreadyReviewed}
	}
	if rec.FirstLaunchDate != nil && daysSince(*rec.FirstLaunchDate, now) < minDaysSinceInstall {
		return Decision{Reason: ReasonTooSoonAfterInstall}
	}
	if rec.ActionCount < minActions {
		return Decision{Reason: ReasonInsufficientActions}
	}
	if rec.LastPromptDate != nil && daysSince(*rec.LastPromptDate, now) < minDaysBetweenPrompts {
		return Decision{Reason: ReasonTooSoonAfterLastPrompt}
	}
	return Decision{Eligible: true}
}

// Evaluate reports eligibility without side effects.
func (s *DefaultReviewService) Evaluate(ctx context.Context, installationID string, now time.Time) Decision {
	return s.evaluateRecord(s.loadRecord(ctx, installationID), now)
}

// RequestReview evaluates and, when eligible, triggers the prompt and stamps
// lastPromptDate. Merely invoking the prompt counts as prompted; the platform
// does not report whether the user actually engaged.
func (s *DefaultReviewService) RequestReview(ctx context.Context, installationID string, now time.Time) Decision {
	if s.Locker != nil {
		ok, err := s.Locker.Acquire(ctx, recordKey(installationID))
		if err != nil {
			// Lease failure degrades to the unguarded path rather than
			// blocking the prompt.
			atomic.AddInt64(&s.storeErrors, 1)
			utils.GetLogger().Warn("review: lock acquire failed, proceeding unguarded",
				zap.String("installation", installationID), zap.Error(err))
		} else if !ok {
			// Another invocation is mid-evaluation; the channel is effectively
			// unavailable to this one.
			return Decision{Reason: ReasonUnavailable}
		} else {
			defer s.Locker.Release(ctx, recordKey(installationID))
		}
	}

	rec := s.loadRecord(ctx, installationID)
	decision := s.evaluateRecord(rec, now)
	if !decision.Eligible {
		return decision
	}

	if err := s.Channel.Trigger(ctx); err != nil {
		utils.GetLogger().Warn("review: prompt trigger failed",
			zap.String("installation", installationID), zap.Error(err))
		return Decision{Reason: ReasonUnavailable}
	}

	rec.LastPromptDate = &now
	s.saveRecord(ctx, installationID, rec)
	return decision
}

// MarkAsReviewed latches hasReviewed permanently. The signal comes from
// outside; it is not derivable from anything this service stores.
func (s *DefaultReviewService) MarkAsReviewed(ctx context.Context, installationID string) {
	rec := s.loadRecord(ctx, installationID)
	rec.HasReviewed = true
	s.saveRecord(ctx, installationID, rec)
}

// Reset clears the record to defaults.
func (s *DefaultReviewService) Reset(ctx context.Context, installationID string) {
	if err := s.Store.Remove(ctx, recordKey(installationID)); err != nil {
		atomic.AddInt64(&s.storeErrors, 1)
		utils.GetLogger().Warn("review: record remove failed",
			zap.String("installation", installationID), zap.Error(err))
	}
}

// HasDirectAction reports whether the channel offers a direct store-page link.
func (s *DefaultReviewService) HasDirectAction() bool {
	return s.Channel.HasDirectAction()
}

// StoreErrorCount reports how many storage failures were swallowed so far.
func (s *DefaultReviewService) StoreErrorCount() int64 {
	return atomic.LoadInt64(&s.storeErrors)
}
