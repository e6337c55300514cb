package notify

import "context"

// Notifier defines the interface for sending a notification to a user.
// This abstraction allows swapping the dev-mode logger with the real
// email integration without refactoring.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}
