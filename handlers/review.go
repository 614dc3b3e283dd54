package handlers

import (
	"net/http"
	"time"

	"urbpaddle/services/review"
	"urbpaddle/utils"

	"github.com/gin-gonic/gin"
)

// InstallationIDHeader identifies one app installation; the client generates
// it once and sends it on every review-gate call.
const InstallationIDHeader = "X-Installation-ID"

// ReviewHandler exposes the review prompt gate to the app.
type ReviewHandler struct {
	Service review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

func installationID(c *gin.Context) (string, bool) {
	id := c.GetHeader(InstallationIDHeader)
	if id == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing installation id", "set the "+InstallationIDHeader+" header")
		return "", false
	}
	return id, true
}

// InitHandler records the first launch date, once.
func (h *ReviewHandler) InitHandler(c *gin.Context) {
	id, ok := installationID(c)
	if !ok {
		return
	}
	h.Service.Initialize(c.Request.Context(), id, time.Now())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ActionHandler counts one qualifying user action.
func (h *ReviewHandler) ActionHandler(c *gin.Context) {
	id, ok := installationID(c)
	if !ok {
		return
	}
	h.Service.RecordAction(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// StatusHandler reports eligibility without triggering the prompt.
func (h *ReviewHandler) StatusHandler(c *gin.Context) {
	id, ok := installationID(c)
	if !ok {
		return
	}
	decision := h.Service.Evaluate(c.Request.Context(), id, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"eligible":     decision.Eligible,
		"reason":       decision.Reason,
		"directAction": h.Service.HasDirectAction(),
	})
}

// EvaluateHandler evaluates and, when eligible, triggers the prompt.
func (h *ReviewHandler) EvaluateHandler(c *gin.Context) {
	id, ok := installationID(c)
	if !ok {
		return
	}
	decision := h.Service.RequestReview(c.Request.Context(), id, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"eligible":     decision.Eligible,
		"reason":       decision.Reason,
		"directAction": h.Service.HasDirectAction(),
	})
}

// ReviewedHandler latches the record after the user left a review.
func (h *ReviewHandler) ReviewedHandler(c *gin.Context) {
	id, ok := installationID(c)
	if !ok {
		return
	}
	h.Service.MarkAsReviewed(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ResetHandler clears the record. Test and debug use only.
func (h *ReviewHandler) ResetHandler(c *gin.Context) {
	id, ok := installationID(c)
	if !ok {
		return
	}
	h.Service.Reset(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
