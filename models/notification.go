package models

// EventKind identifies which notification scenario occurred. The set is
// closed: routing switches exhaustively over these values and rejects
// anything else before any lookup or dispatch happens.
type EventKind string

const (
	EventMatchReminder    EventKind = "match_reminder"
	EventBookingCancelled EventKind = "booking_cancelled"
	EventMatchEnded       EventKind = "match_ended"
	EventResultProposed   EventKind = "result_proposed"
)

// NotificationEvent is the inbound trigger: a kind tag plus the variant
// payload. Only the fields relevant to the tagged kind are read.
type NotificationEvent struct {
	Type EventKind `json:"type"`
	Data EventData `json:"data"`
}

// EventData carries the union of all per-kind fields. Time and date values
// arrive presentation-ready from the caller and are interpolated verbatim.
type EventData struct {
	UserID        string `json:"user_id,omitempty"`
	StartTime     string `json:"start_time,omitempty"`
	CourtNumber   string `json:"court_number,omitempty"`
	CommunityID   string `json:"community_id,omitempty"`
	CancellerName string `json:"canceller_name,omitempty"`
	Date          string `json:"date,omitempty"`
	MatchID       string `json:"match_id,omitempty"`
	ProposerID    string `json:"proposer_id,omitempty"`
	MatchDate     string `json:"match_date,omitempty"`
}

// MessagePayload is the push message built for an event. It is constructed
// once per event and sent unchanged to every resolved device token; Data
// always carries the originating event kind under "type" so the client can
// route taps.
type MessagePayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

// TokenStatus is the per-device delivery status reported by the push provider.
type TokenStatus struct {
	Token   string `json:"token"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// DispatchResult is the structured outcome of one batched provider call.
type DispatchResult struct {
	SuccessCount int           `json:"successCount"`
	FailureCount int           `json:"failureCount"`
	Statuses     []TokenStatus `json:"statuses"`
}

// DispatchOutcome is what event handling returns to the trigger surface.
// NoRecipients marks the terminal no-op outcome: the directory legitimately
// had nobody to notify, so no provider call was made.
type DispatchOutcome struct {
	Recipients   []string        `json:"recipients"`
	Payload      MessagePayload  `json:"payload"`
	NoRecipients bool            `json:"noRecipients"`
	Result       *DispatchResult `json:"result,omitempty"`
}

// ReminderPayload is the asynq task body for a scheduled match reminder.
type ReminderPayload struct {
	UserID      string `json:"userId"`
	StartTime   string `json:"startTime"`
	CourtNumber string `json:"courtNumber"`
}
