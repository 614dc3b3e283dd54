package notification

import (
	"context"
	"fmt"
	"testing"

	"urbpaddle/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeProfileRepo struct {
	profiles  map[string]*models.Profile
	tokensErr error
}

func (f *fakeProfileRepo) GetByID(id string) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, fmt.Errorf("profile %s: %w", id, mongo.ErrNoDocuments)
	}
	return p, nil
}

func (f *fakeProfileRepo) Create(p *models.Profile) error { return nil }

func (f *fakeProfileRepo) UpsertDevice(profileID string, device models.Device) error { return nil }

func (f *fakeProfileRepo) PushTokensFor(id string) ([]string, error) {
	if f.tokensErr != nil {
		return nil, f.tokensErr
	}
	p, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	return p.PushTokens(), nil
}

func (f *fakeProfileRepo) MembersOf(communityID string) ([]string, error) {
	var ids []string
	for _, p := range f.profiles {
		if p.ResidentCommunityID == communityID {
			ids = append(ids, p.ID)
		}
	}
	return ids, nil
}

func (f *fakeProfileRepo) DisplayName(id string) (string, error) {
	p, ok := f.profiles[id]
	if !ok {
		return "", fmt.Errorf("profile %s: %w", id, mongo.ErrNoDocuments)
	}
	return p.FullName, nil
}

type fakeMatchRepo struct {
	matches map[string]*models.Match
}

func (f *fakeMatchRepo) GetByID(id string) (*models.Match, error) {
	m, ok := f.matches[id]
	if !ok {
		return nil, fmt.Errorf("match %s: %w", id, mongo.ErrNoDocuments)
	}
	return m, nil
}

func (f *fakeMatchRepo) Create(m *models.Match) error { return nil }

type sendCall struct {
	tokens  []string
	payload models.MessagePayload
}

type fakePushChannel struct {
	calls   []sendCall
	sendErr error
}

func (f *fakePushChannel) Send(ctx context.Context, tokens []string, payload models.MessagePayload) (*models.DispatchResult, error) {
	f.calls = append(f.calls, sendCall{tokens: tokens, payload: payload})
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	result := &models.DispatchResult{SuccessCount: len(tokens)}
	for _, t := range tokens {
		result.Statuses = append(result.Statuses, models.TokenStatus{Token: t, Success: true})
	}
	return result, nil
}

func strPtr(s string) *string { return &s }

func profileWith(id, name, community string, tokens ...string) *models.Profile {
	p := &models.Profile{ID: id, FullName: name, ResidentCommunityID: community}
	for i, t := range tokens {
		p.Devices = append(p.Devices, models.Device{DeviceID: fmt.Sprintf("%s-d%d", id, i), PushToken: t})
	}
	return p
}

func newTestService(profiles *fakeProfileRepo, matches *fakeMatchRepo, push *fakePushChannel) *DefaultNotificationService {
	svc, err := NewDefaultNotificationService(profiles, matches, push)
	if err != nil {
		panic(err)
	}
	return svc
}

func TestRoute_InvalidEventKind(t *testing.T) {
	push := &fakePushChannel{}
	svc := newTestService(&fakeProfileRepo{}, &fakeMatchRepo{}, push)

	_, err := svc.HandleEvent(context.Background(), models.NotificationEvent{Type: "something_else"})
	require.Error(t, err)
	var invalid *InvalidEventKindError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "something_else", invalid.Kind)
	assert.Empty(t, push.calls, "no dispatch must happen for an invalid kind")
}

func TestRoute_MatchReminder(t *testing.T) {
	svc := newTestService(&fakeProfileRepo{}, &fakeMatchRepo{}, &fakePushChannel{})

	event := models.NotificationEvent{
		Type: models.EventMatchReminder,
		Data: models.EventData{UserID: "u1", StartTime: "18:30", CourtNumber: "2"},
	}
	recipients, payload, err := svc.Route(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, recipients)
	assert.Contains(t, payload.Body, "18:30")
	assert.Contains(t, payload.Body, "court 2")
	assert.Equal(t, "match_reminder", payload.Data["type"])
}

func TestRoute_MatchEnded(t *testing.T) {
	svc := newTestService(&fakeProfileRepo{}, &fakeMatchRepo{}, &fakePushChannel{})

	recipients, payload, err := svc.Route(context.Background(), models.NotificationEvent{
		Type: models.EventMatchEnded,
		Data: models.EventData{UserID: "u9"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"u9"}, recipients)
	assert.Equal(t, "match_ended", payload.Data["type"])
}

func TestRoute_ResultProposed_ExcludesProposer(t *testing.T) {
	profiles := &fakeProfileRepo{profiles: map[string]*models.Profile{
		"proposer": profileWith("proposer", "Ana Ruiz", "c1"),
	}}
	// The proposer occupies two slots; one slot is open.
	matches := &fakeMatchRepo{matches: map[string]*models.Match{
		"m1": {
			ID:        "m1",
			Player1ID: strPtr("proposer"),
			Player2ID: strPtr("p2"),
			Player3ID: strPtr("proposer"),
			Player4ID: nil,
		},
	}}
	svc := newTestService(profiles, matches, &fakePushChannel{})

	recipients, payload, err := svc.Route(context.Background(), models.NotificationEvent{
		Type: models.EventResultProposed,
		Data: models.EventData{MatchID: "m1", ProposerID: "proposer", MatchDate: "2026-09-01"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, recipients)
	assert.NotContains(t, recipients, "proposer")
	assert.Contains(t, payload.Body, "Ana Ruiz")
	assert.Contains(t, payload.Body, "2026-09-01")
}

func TestRoute_ResultProposed_MatchNotFound(t *testing.T) {
	svc := newTestService(&fakeProfileRepo{}, &fakeMatchRepo{matches: map[string]*models.Match{}}, &fakePushChannel{})

	_, _, err := svc.Route(context.Background(), models.NotificationEvent{
		Type: models.EventResultProposed,
		Data: models.EventData{MatchID: "missing", ProposerID: "p1"},
	})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.ID)
}

func TestHandleEvent_NoTokensIsSuccess(t *testing.T) {
	// Recipient exists but owns no devices.
	profiles := &fakeProfileRepo{profiles: map[string]*models.Profile{
		"u1": profileWith("u1", "Marco", "c1"),
	}}
	push := &fakePushChannel{}
	svc := newTestService(profiles, &fakeMatchRepo{}, push)

	outcome, err := svc.HandleEvent(context.Background(), models.NotificationEvent{
		Type: models.EventMatchEnded,
		Data: models.EventData{UserID: "u1"},
	})
	require.NoError(t, err)
	assert.True(t, outcome.NoRecipients)
	assert.Empty(t, push.calls, "empty address list must not reach the provider")
}

func TestHandleEvent_BookingCancelledBatchesAllTokens(t *testing.T) {
	// Three community members, one with two devices: four tokens total.
	profiles := &fakeProfileRepo{profiles: map[string]*models.Profile{
		"a": profileWith("a", "A", "c1", "tok-a1", "tok-a2"),
		"b": profileWith("b", "B", "c1", "tok-b"),
		"c": profileWith("c", "C", "c1", "tok-c"),
		"x": profileWith("x", "X", "other", "tok-x"),
	}}
	push := &fakePushChannel{}
	svc := newTestService(profiles, &fakeMatchRepo{}, push)

	outcome, err := svc.HandleEvent(context.Background(), models.NotificationEvent{
		Type: models.EventBookingCancelled,
		Data: models.EventData{CommunityID: "c1", CancellerName: "B", Date: "2026-09-02", StartTime: "10:00"},
	})
	require.NoError(t, err)
	require.Len(t, push.calls, 1, "all tokens go out in one batched call")
	assert.Len(t, push.calls[0].tokens, 4)
	assert.NotContains(t, push.calls[0].tokens, "tok-x")
	assert.Equal(t, 4, outcome.Result.SuccessCount)
	assert.Equal(t, "booking_cancelled", push.calls[0].payload.Data["type"])
}

func TestHandleEvent_DispatchError(t *testing.T) {
	profiles := &fakeProfileRepo{profiles: map[string]*models.Profile{
		"u1": profileWith("u1", "Marco", "c1", "tok-1"),
	}}
	push := &fakePushChannel{sendErr: fmt.Errorf("provider unavailable")}
	svc := newTestService(profiles, &fakeMatchRepo{}, push)

	_, err := svc.HandleEvent(context.Background(), models.NotificationEvent{
		Type: models.EventMatchEnded,
		Data: models.EventData{UserID: "u1"},
	})
	var dispatch *DispatchError
	require.ErrorAs(t, err, &dispatch)
	require.Len(t, push.calls, 1, "exactly one attempt, no retry")
}

func TestHandleEvent_TokenLookupFailureNoPartialDispatch(t *testing.T) {
	profiles := &fakeProfileRepo{
		profiles:  map[string]*models.Profile{"u1": profileWith("u1", "Marco", "c1", "tok-1")},
		tokensErr: fmt.Errorf("directory down"),
	}
	push := &fakePushChannel{}
	svc := newTestService(profiles, &fakeMatchRepo{}, push)

	_, err := svc.HandleEvent(context.Background(), models.NotificationEvent{
		Type: models.EventMatchEnded,
		Data: models.EventData{UserID: "u1"},
	})
	require.Error(t, err)
	assert.Empty(t, push.calls)
}
