package handlers

// HandlerBundle aggregates the handlers wired in main for route registration.
type HandlerBundle struct {
	Notification *NotificationHandler
	Review       *ReviewHandler
	Profile      *ProfileHandler
	Match        *MatchHandler
}
