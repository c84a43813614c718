// internal/adapters/out/mail/storefront_mailer.go
package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// StorefrontMailer implements notification.Mailer: one transactional mail
// per notification kind, rendered from fixed plain-text templates.
type StorefrontMailer struct {
	client      EmailClient
	fromAddress string
	appBaseURL  string
}

// NewStorefrontMailer wires the mailer.
//   - client      : concrete EmailClient (SendGrid in production)
//   - fromAddress : sender address, e.g. "no-reply@campusink.store"
//   - appBaseURL  : storefront base URL used in mail bodies
func NewStorefrontMailer(client EmailClient, fromAddress, appBaseURL string) *StorefrontMailer {
	return &StorefrontMailer{
		client:      client,
		fromAddress: strings.TrimSpace(fromAddress),
		appBaseURL:  strings.TrimRight(strings.TrimSpace(appBaseURL), "/"),
	}
}

func (m *StorefrontMailer) SendWelcome(ctx context.Context, email, name string) error {
	subject := "Welcome to Campus Ink"
	body := fmt.Sprintf(
		`Hi %s,

Welcome to Campus Ink! Your account is ready.

Browse the catalog and start customizing your university apparel:

  %s/catalog

--
Campus Ink`,
		strings.TrimSpace(name),
		m.appBaseURL,
	)
	return m.client.Send(ctx, m.fromAddress, strings.TrimSpace(email), subject, body, "")
}

func (m *StorefrontMailer) SendOrderConfirmation(ctx context.Context, email, name, orderID string, orderDetails json.RawMessage) error {
	subject := fmt.Sprintf("Your Campus Ink order %s", strings.TrimSpace(orderID))
	body := fmt.Sprintf(
		`Hi %s,

Thanks for your order! Your confirmation number is %s.

Order details:

%s

We'll let you know as soon as your apparel ships.

--
Campus Ink`,
		strings.TrimSpace(name),
		strings.TrimSpace(orderID),
		renderDetails(orderDetails),
	)
	return m.client.Send(ctx, m.fromAddress, strings.TrimSpace(email), subject, body, "")
}

func (m *StorefrontMailer) SendPrinterNewOrder(ctx context.Context, printerEmail, printerName, orderID string, orderDetails json.RawMessage) error {
	subject := fmt.Sprintf("[Campus Ink] New order %s", strings.TrimSpace(orderID))
	body := fmt.Sprintf(
		`Hello %s,

A new Campus Ink order is ready for production.

  Order ID: %s

Order details:

%s

--
Campus Ink`,
		strings.TrimSpace(printerName),
		strings.TrimSpace(orderID),
		renderDetails(orderDetails),
	)
	return m.client.Send(ctx, m.fromAddress, strings.TrimSpace(printerEmail), subject, body, "")
}

func (m *StorefrontMailer) SendPasswordReset(ctx context.Context, email, link string) error {
	subject := "Reset your Campus Ink password"
	body := fmt.Sprintf(
		`We received a request to reset your Campus Ink password.

Open the link below to choose a new password:

  %s

If you did not request this, you can safely ignore this message.

--
Campus Ink`,
		strings.TrimSpace(link),
	)
	return m.client.Send(ctx, m.fromAddress, strings.TrimSpace(email), subject, body, "")
}

func (m *StorefrontMailer) SendEmailVerification(ctx context.Context, email, link string) error {
	subject := "Verify your Campus Ink email address"
	body := fmt.Sprintf(
		`Please confirm this email address for your Campus Ink account.

Open the link below to verify:

  %s

If you did not create a Campus Ink account, ignore this message.

--
Campus Ink`,
		strings.TrimSpace(link),
	)
	return m.client.Send(ctx, m.fromAddress, strings.TrimSpace(email), subject, body, "")
}

// renderDetails pretty-prints the opaque order-details blob for the mail
// body. The blob's shape is never inspected; indentation is purely cosmetic
// and falls back to the verbatim bytes.
func renderDetails(details json.RawMessage) string {
	if len(details) == 0 {
		return "(no details)"
	}
	var buf any
	if err := json.Unmarshal(details, &buf); err == nil {
		if pretty, err := json.MarshalIndent(buf, "", "  "); err == nil {
			return string(pretty)
		}
	}
	return string(details)
}
