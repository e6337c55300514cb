package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// ResendNotifier sends notifications as emails through Resend.
type ResendNotifier struct {
	client *resend.Client
	from   string
}

func NewResendNotifier(apiKey, fromEmail string) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   fromEmail,
	}
}

func (n *ResendNotifier) Send(ctx context.Context, to, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{to},
		Subject: subject,
		Html: fmt.Sprintf(`
			<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
				<h2 style="color: #333;">Tour Visor</h2>
				<p>%s</p>
				<p style="color: #aaa; font-size: 12px;">
					You are receiving this because of activity on your Tour Visor account.
				</p>
			</div>
		`, body),
	}

	sent, err := n.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	log.Printf("📧 Email sent to %s (ID: %s)", to, sent.Id)
	return nil
}
