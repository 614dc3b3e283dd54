package review

import (
	"context"
	"fmt"
	"time"
)

// Reason explains why the review prompt was suppressed.
type Reason string

const (
	ReasonUnavailable            Reason = "unavailable"
	ReasonAlreadyReviewed        Reason = "alreadyReviewed"
	ReasonTooSoonAfterInstall    Reason = "tooSoonAfterInstall"
	ReasonInsufficientActions    Reason = "insufficientActions"
	ReasonTooSoonAfterLastPrompt Reason = "tooSoonAfterLastPrompt"
)

// Decision is the outcome of one eligibility evaluation.
type Decision struct {
	Eligible bool   `json:"eligible"`
	Reason   Reason `json:"reason,omitempty"`
}

// RecordStore persists the review record blob per installation.
type RecordStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// RecordLocker serializes record read-modify-write cycles across concurrent
// invocations for the same installation.
type RecordLocker interface {
	// Acquire takes a short-lived lease on the key. It returns false when
	// another invocation holds the lease.
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string)
}

// PromptChannel is the capability to actually surface the review prompt.
type PromptChannel interface {
	IsAvailable() bool
	// Trigger requests the prompt. Success means the request was accepted,
	// not that the user reviewed.
	Trigger(ctx context.Context) error
	// HasDirectAction reports whether an "open store page" affordance exists,
	// bypassing gating entirely.
	HasDirectAction() bool
}

// ReviewService gates the one-time review prompt on accumulated behavioral
// signals. Storage failures never surface to the caller: reads fall back to
// defaults and writes are best-effort, logged and counted.
type ReviewService interface {
	// Initialize records the first launch date, exactly once.
	Initialize(ctx context.Context, installationID string, now time.Time)
	// RecordAction counts one qualifying user action. No eligibility check
	// happens as a side effect.
	RecordAction(ctx context.Context, installationID string)
	// Evaluate reports eligibility without triggering anything.
	Evaluate(ctx context.Context, installationID string, now time.Time) Decision
	// RequestReview evaluates and, when eligible, triggers the prompt and
	// stamps lastPromptDate.
	RequestReview(ctx context.Context, installationID string, now time.Time) Decision
	// MarkAsReviewed latches the record permanently.
	MarkAsReviewed(ctx context.Context, installationID string)
	// Reset clears the record to defaults. Test and debug use only.
	Reset(ctx context.Context, installationID string)
	// HasDirectAction reports the channel's direct store-page affordance.
	HasDirectAction() bool
	// StoreErrorCount reports how many storage failures were swallowed.
	StoreErrorCount() int64
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Store   RecordStore
	Locker  RecordLocker
	Channel PromptChannel

	storeErrors int64
}

// NewDefaultReviewService wires the gate to its store and prompt channel.
// The locker is optional; without one concurrent evaluations for the same
// installation may double-prompt.
func NewDefaultReviewService(store RecordStore, locker RecordLocker, channel PromptChannel) (*DefaultReviewService, error) {
	if store == nil || channel == nil {
		return nil, fmt.Errorf("review service initialization error: store or prompt channel is nil")
	}
	return &DefaultReviewService{
		Store:   store,
		Locker:  locker,
		Channel: channel,
	}, nil
}
