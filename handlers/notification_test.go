package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"urbpaddle/models"
	"urbpaddle/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificationService struct {
	outcome *models.DispatchOutcome
	err     error
}

func (s *stubNotificationService) Route(ctx context.Context, event models.NotificationEvent) ([]string, models.MessagePayload, error) {
	return nil, models.MessagePayload{}, s.err
}

func (s *stubNotificationService) HandleEvent(ctx context.Context, event models.NotificationEvent) (*models.DispatchOutcome, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.outcome, nil
}

func sendPush(t *testing.T, svc notification.NotificationService, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	h := NewNotificationHandler(svc)
	router.POST("/api/notifications/send", h.SendPushHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/notifications/send", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSendPushHandler_InvalidKind(t *testing.T) {
	svc := &stubNotificationService{err: &notification.InvalidEventKindError{Kind: "bogus"}}
	w := sendPush(t, svc, `{"type":"bogus","data":{}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid event kind")
}

func TestSendPushHandler_MatchNotFound(t *testing.T) {
	svc := &stubNotificationService{err: &notification.NotFoundError{Resource: "match", ID: "m1"}}
	w := sendPush(t, svc, `{"type":"result_proposed","data":{"match_id":"m1"}}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendPushHandler_NoRecipients(t *testing.T) {
	svc := &stubNotificationService{outcome: &models.DispatchOutcome{NoRecipients: true}}
	w := sendPush(t, svc, `{"type":"match_ended","data":{"user_id":"u1"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no recipients found")
}

func TestSendPushHandler_DispatchError(t *testing.T) {
	svc := &stubNotificationService{err: &notification.DispatchError{Err: assert.AnError}}
	w := sendPush(t, svc, `{"type":"match_ended","data":{"user_id":"u1"}}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSendPushHandler_Success(t *testing.T) {
	svc := &stubNotificationService{outcome: &models.DispatchOutcome{
		Recipients: []string{"u1"},
		Result:     &models.DispatchResult{SuccessCount: 2},
	}}
	w := sendPush(t, svc, `{"type":"match_ended","data":{"user_id":"u1"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestSendPushHandler_MalformedBody(t *testing.T) {
	svc := &stubNotificationService{}
	w := sendPush(t, svc, `{"type":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
