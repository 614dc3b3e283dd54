package tasks

import (
	"fmt"
	"time"

	"urbpaddle/config"
	"urbpaddle/models"

	"github.com/hibiken/asynq"
)

var client *asynq.Client

// InitClient creates the asynq client used to enqueue reminder tasks.
func InitClient() {
	client = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
}

// ScheduleMatchReminder enqueues a reminder to fire a configured lead time
// before the match starts. A match starting inside the lead window gets its
// reminder immediately.
func ScheduleMatchReminder(payload models.ReminderPayload, startTime time.Time) error {
	if client == nil {
		return fmt.Errorf("tasks: client not initialized")
	}

	fireAt := startTime.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("tasks: failed to build reminder task: %w", err)
	}
	if _, err := client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("tasks: failed to enqueue reminder: %w", err)
	}
	return nil
}
