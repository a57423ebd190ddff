package notify

import "context"

// EventStop is the event name attached to end-of-auction notices.
const EventStop = "STOP"

// Notification is the payload delivered to a user.
type Notification struct {
	UserID string `json:"user_id"`
	Event  string `json:"event"`
	Text   string `json:"text"`
}

// Notifier defines the interface for the outbound user-notification sink.
type Notifier interface {
	// Notify enqueues a notification for asynchronous delivery.
	Notify(ctx context.Context, userID, event, text string) error
}
