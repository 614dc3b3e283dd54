package notification

import (
	"context"
	"fmt"

	"urbpaddle/models"

	"firebase.google.com/go/v4/messaging"
)

// FCMPushChannel sends pushes through Firebase Cloud Messaging.
type FCMPushChannel struct {
	Client *messaging.Client
}

func NewFCMPushChannel(client *messaging.Client) *FCMPushChannel {
	return &FCMPushChannel{Client: client}
}

// Send delivers one payload to all tokens in a single multicast call and
// maps the provider's per-token responses into a DispatchResult.
func (c *FCMPushChannel) Send(ctx context.Context, tokens []string, payload models.MessagePayload) (*models.DispatchResult, error) {
	msg := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	br, err := c.Client.SendEachForMulticast(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to send FCM multicast: %w", err)
	}

	result := &models.DispatchResult{
		SuccessCount: br.SuccessCount,
		FailureCount: br.FailureCount,
	}
	for i, resp := range br.Responses {
		status := models.TokenStatus{Token: tokens[i], Success: resp.Success}
		if resp.Error != nil {
			status.Error = resp.Error.Error()
		}
		result.Statuses = append(result.Statuses, status)
	}
	return result, nil
}
