// internal/adapters/out/mail/sendgrid_client.go
package mail

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailClient abstracts the concrete mail transport (SendGrid here; SMTP or
// SES would satisfy it too).
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, plainBody, htmlBody string) error
}

// SendGridClient implements EmailClient via the SendGrid v3 API.
type SendGridClient struct {
	apiKey   string
	fromName string
}

// NewSendGridClient creates the client. fromName is the display name shown
// next to the sender address; the default lives in config, not here.
func NewSendGridClient(apiKey, fromName string) *SendGridClient {
	return &SendGridClient{apiKey: apiKey, fromName: strings.TrimSpace(fromName)}
}

// Send sends one email. A >=400 SendGrid status is reported as an error
// carrying the response body so the caller can surface the downstream detail.
func (c *SendGridClient) Send(ctx context.Context, from, to, subject, plainBody, htmlBody string) error {
	if c.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if from == "" {
		return fmt.Errorf("from address is empty")
	}
	if to == "" {
		return fmt.Errorf("to address is empty")
	}

	fromEmail := mail.NewEmail(c.fromName, from)
	toEmail := mail.NewEmail("", to)

	if htmlBody == "" {
		htmlBody = fmt.Sprintf("<pre>%s</pre>", plainBody)
	}

	message := mail.NewSingleEmail(fromEmail, subject, toEmail, plainBody, htmlBody)

	client := sendgrid.NewSendClient(c.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("[sendgrid] error status=%d, body=%s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}

	log.Printf("[sendgrid] mail sent: status=%d to=%s subject=%s", response.StatusCode, to, subject)
	return nil
}
