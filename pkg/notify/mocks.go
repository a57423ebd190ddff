package notify

import "context"

// NoOpNotifier is a notifier that drops every notification.
type NoOpNotifier struct{}

// Notify does nothing.
func (n *NoOpNotifier) Notify(ctx context.Context, userID, event, text string) error {
	return nil
}
