package notification

import (
	"fmt"

	"urbpaddle/models"
)

// Payload builders. Time and date strings are interpolated verbatim: the
// caller owns presentation. Data always carries the event kind under "type"
// so the app can route the tap to the right screen.

func reminderPayload(data models.EventData) models.MessagePayload {
	return models.MessagePayload{
		Title: "Match reminder 🎾",
		Body:  fmt.Sprintf("Your match starts at %s on court %s. See you there!", data.StartTime, data.CourtNumber),
		Data: map[string]string{
			"type":         string(models.EventMatchReminder),
			"start_time":   data.StartTime,
			"court_number": data.CourtNumber,
		},
	}
}

func cancellationPayload(data models.EventData) models.MessagePayload {
	return models.MessagePayload{
		Title: "Booking cancelled",
		Body:  fmt.Sprintf("%s cancelled their booking on %s at %s. The court is free again!", data.CancellerName, data.Date, data.StartTime),
		Data: map[string]string{
			"type":         string(models.EventBookingCancelled),
			"community_id": data.CommunityID,
		},
	}
}

func matchEndedPayload(data models.EventData) models.MessagePayload {
	return models.MessagePayload{
		Title: "Match finished",
		Body:  "Your match has ended. Add the result to keep your stats up to date!",
		Data: map[string]string{
			"type": string(models.EventMatchEnded),
		},
	}
}

func resultProposedPayload(data models.EventData, proposerName string) models.MessagePayload {
	return models.MessagePayload{
		Title: "Match result proposed",
		Body:  fmt.Sprintf("%s proposed a result for your match on %s. Confirm or dispute it.", proposerName, data.MatchDate),
		Data: map[string]string{
			"type":     string(models.EventResultProposed),
			"match_id": data.MatchID,
		},
	}
}
