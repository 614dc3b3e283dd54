package handlers

import (
	"errors"
	"net/http"
	"time"

	"urbpaddle/models"
	"urbpaddle/services/notification"
	"urbpaddle/services/tasks"
	"urbpaddle/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the event trigger surface.
type NotificationHandler struct {
	Service notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// SendPushHandler accepts one event {type, data} and runs it end to end.
func (h *NotificationHandler) SendPushHandler(c *gin.Context) {
	var event models.NotificationEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	outcome, err := h.Service.HandleEvent(c.Request.Context(), event)
	if err != nil {
		var invalidKind *notification.InvalidEventKindError
		var notFound *notification.NotFoundError
		var dispatch *notification.DispatchError
		switch {
		case errors.As(err, &invalidKind):
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		case errors.As(err, &notFound):
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		case errors.As(err, &dispatch):
			utils.JSONError(c, http.StatusInternalServerError, "failed to dispatch notification", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to process event", err.Error())
		}
		return
	}

	// The router treats an empty address list as a clean no-op; the trigger
	// contract still reports it to the caller as a distinct 400.
	if outcome.NoRecipients {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no recipients found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": outcome.Result})
}

// ScheduleReminderHandler enqueues a match reminder push for later delivery.
func (h *NotificationHandler) ScheduleReminderHandler(c *gin.Context) {
	var input struct {
		UserID      string    `json:"user_id" binding:"required"`
		StartsAt    time.Time `json:"starts_at" binding:"required"`
		StartTime   string    `json:"start_time" binding:"required"`
		CourtNumber string    `json:"court_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	payload := models.ReminderPayload{
		UserID:      input.UserID,
		StartTime:   input.StartTime,
		CourtNumber: input.CourtNumber,
	}
	if err := tasks.ScheduleMatchReminder(payload, input.StartsAt); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to schedule reminder", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
