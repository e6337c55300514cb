package notify

import (
	"context"
	"log"
)

// MockNotifier implements the Notifier interface by logging messages to
// stdout. Used when RESEND_API_KEY is not configured.
type MockNotifier struct{}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Send(ctx context.Context, to, subject, body string) error {
	log.Printf("📧 [Dev Mode] Notification for %s — %s: %s", to, subject, body)
	return nil
}
