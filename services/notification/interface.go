package notification

import (
	"context"
	"fmt"

	matchRepo "urbpaddle/database/repository/match"
	profileRepo "urbpaddle/database/repository/profile"
	"urbpaddle/models"
)

// PushChannel sends one message payload to a batch of device tokens in a
// single provider call and reports per-token delivery status.
type PushChannel interface {
	Send(ctx context.Context, tokens []string, payload models.MessagePayload) (*models.DispatchResult, error)
}

// NotificationService routes domain events to recipients and dispatches pushes.
type NotificationService interface {
	// Route resolves the recipient set and builds the message payload for an
	// event without touching the push provider.
	Route(ctx context.Context, event models.NotificationEvent) ([]string, models.MessagePayload, error)
	// HandleEvent runs an event end to end: route, resolve device tokens,
	// dispatch one batched push. An event whose recipients own no devices
	// completes successfully without a provider call.
	HandleEvent(ctx context.Context, event models.NotificationEvent) (*models.DispatchOutcome, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Profiles profileRepo.ProfileRepository
	Matches  matchRepo.MatchRepository
	Push     PushChannel
}

func NewDefaultNotificationService(
	profiles profileRepo.ProfileRepository,
	matches matchRepo.MatchRepository,
	push PushChannel,
) (*DefaultNotificationService, error) {
	if profiles == nil || matches == nil || push == nil {
		return nil, fmt.Errorf("notification service initialization error: profile repo, match repo or push channel is nil")
	}
	return &DefaultNotificationService{
		Profiles: profiles,
		Matches:  matches,
		Push:     push,
	}, nil
}
