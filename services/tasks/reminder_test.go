package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"urbpaddle/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReminderTask(t *testing.T) {
	payload := models.ReminderPayload{
		UserID:      "u1",
		StartTime:   "18:30",
		CourtNumber: "2",
	}
	fireAt := time.Now().Add(time.Hour)

	task, opts, err := NewReminderTask(payload, fireAt)
	require.NoError(t, err)
	assert.Equal(t, TypeSendReminder, task.Type())
	assert.Len(t, opts, 1)

	var decoded models.ReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)
}
