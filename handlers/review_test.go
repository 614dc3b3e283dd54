package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"urbpaddle/services/review"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubReviewService struct {
	decision review.Decision
	direct   bool
	actions  int
}

func (s *stubReviewService) Initialize(ctx context.Context, id string, now time.Time) {}
func (s *stubReviewService) RecordAction(ctx context.Context, id string)              { s.actions++ }
func (s *stubReviewService) Evaluate(ctx context.Context, id string, now time.Time) review.Decision {
	return s.decision
}
func (s *stubReviewService) RequestReview(ctx context.Context, id string, now time.Time) review.Decision {
	return s.decision
}
func (s *stubReviewService) MarkAsReviewed(ctx context.Context, id string) {}
func (s *stubReviewService) Reset(ctx context.Context, id string)          {}
func (s *stubReviewService) HasDirectAction() bool                         { return s.direct }
func (s *stubReviewService) StoreErrorCount() int64                        { return 0 }

func reviewRouter(svc review.ReviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewReviewHandler(svc)
	router.POST("/api/review/action", h.ActionHandler)
	router.GET("/api/review/status", h.StatusHandler)
	return router
}

func TestReviewHandler_MissingInstallationID(t *testing.T) {
	router := reviewRouter(&stubReviewService{})

	req := httptest.NewRequest(http.MethodPost, "/api/review/action", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing installation id")
}

func TestReviewHandler_Status(t *testing.T) {
	svc := &stubReviewService{
		decision: review.Decision{Reason: review.ReasonInsufficientActions},
		direct:   true,
	}
	router := reviewRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/review/status", nil)
	req.Header.Set(InstallationIDHeader, "inst-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"eligible":false`)
	assert.Contains(t, w.Body.String(), "insufficientActions")
	assert.Contains(t, w.Body.String(), `"directAction":true`)
}

func TestReviewHandler_ActionCounts(t *testing.T) {
	svc := &stubReviewService{}
	router := reviewRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/review/action", nil)
	req.Header.Set(InstallationIDHeader, "inst-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.actions)
}
