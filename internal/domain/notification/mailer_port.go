// internal/domain/notification/mailer_port.go
package notification

import (
	"context"
	"encoding/json"
)

// Mailer is the outbound port to the email-sending collaborator: one send
// operation per notification kind, plus the auth-flow mails. A nil error
// means the collaborator reported success; failures carry the downstream
// detail and are never retried here.
type Mailer interface {
	SendWelcome(ctx context.Context, email, name string) error
	SendOrderConfirmation(ctx context.Context, email, name, orderID string, orderDetails json.RawMessage) error
	SendPrinterNewOrder(ctx context.Context, printerEmail, printerName, orderID string, orderDetails json.RawMessage) error
	SendPasswordReset(ctx context.Context, email, link string) error
	SendEmailVerification(ctx context.Context, email, link string) error
}
