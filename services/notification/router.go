package notification

import (
	"context"
	"errors"
	"fmt"

	"urbpaddle/models"
	"urbpaddle/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Route resolves the recipient set and builds the message payload for an
// event. The switch is exhaustive over the closed event kind set; anything
// else fails with InvalidEventKindError before any lookup runs.
func (s *DefaultNotificationService) Route(ctx context.Context, event models.NotificationEvent) ([]string, models.MessagePayload, error) {
	switch event.Type {
	case models.EventMatchReminder:
		return []string{event.Data.UserID}, reminderPayload(event.Data), nil

	case models.EventBookingCancelled:
		members, err := s.Profiles.MembersOf(event.Data.CommunityID)
		if err != nil {
			return nil, models.MessagePayload{}, fmt.Errorf("Route: failed to list members of community %s: %w", event.Data.CommunityID, err)
		}
		return members, cancellationPayload(event.Data), nil

	case models.EventMatchEnded:
		return []string{event.Data.UserID}, matchEndedPayload(event.Data), nil

	case models.EventResultProposed:
		match, err := s.Matches.GetByID(event.Data.MatchID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, models.MessagePayload{}, &NotFoundError{Resource: "match", ID: event.Data.MatchID}
			}
			return nil, models.MessagePayload{}, fmt.Errorf("Route: failed to fetch match %s: %w", event.Data.MatchID, err)
		}

		proposerName, err := s.Profiles.DisplayName(event.Data.ProposerID)
		if err != nil {
			return nil, models.MessagePayload{}, fmt.Errorf("Route: failed to fetch proposer name for %s: %w", event.Data.ProposerID, err)
		}

		var recipients []string
		seen := map[string]bool{}
		for _, id := range match.PlayerIDs() {
			if id == event.Data.ProposerID || seen[id] {
				continue
			}
			seen[id] = true
			recipients = append(recipients, id)
		}
		return recipients, resultProposedPayload(event.Data, proposerName), nil

	default:
		return nil, models.MessagePayload{}, &InvalidEventKindError{Kind: string(event.Type)}
	}
}

// HandleEvent runs an event end to end. One batched push call covers every
// resolved device token; there is no partial dispatch and no internal retry.
func (s *DefaultNotificationService) HandleEvent(ctx context.Context, event models.NotificationEvent) (*models.DispatchOutcome, error) {
	logger := utils.GetLogger()

	recipients, payload, err := s.Route(ctx, event)
	if err != nil {
		return nil, err
	}

	// Tokens are looked up fresh per event; recipients can own several devices.
	var tokens []string
	for _, id := range recipients {
		t, err := s.Profiles.PushTokensFor(id)
		if err != nil {
			return nil, fmt.Errorf("HandleEvent: failed to resolve push tokens for %s: %w", id, err)
		}
		tokens = append(tokens, t...)
	}

	outcome := &models.DispatchOutcome{
		Recipients: recipients,
		Payload:    payload,
	}

	if len(tokens) == 0 {
		outcome.NoRecipients = true
		logger.Info("HandleEvent: no push tokens resolved, skipping dispatch",
			zap.String("event", string(event.Type)),
			zap.Int("recipients", len(recipients)),
		)
		return outcome, nil
	}

	result, err := s.Push.Send(ctx, tokens, payload)
	if err != nil {
		return nil, &DispatchError{Err: err}
	}
	outcome.Result = result

	logger.Info("HandleEvent: push dispatched",
		zap.String("event", string(event.Type)),
		zap.Int("tokens", len(tokens)),
		zap.Int("success", result.SuccessCount),
		zap.Int("failure", result.FailureCount),
	)
	return outcome, nil
}
