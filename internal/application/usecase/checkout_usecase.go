// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/google/uuid"

	"campusink/internal/domain/common"
	"campusink/internal/domain/notification"
)

// CheckoutUsecase turns a client cart snapshot into a confirmation id and the
// two order mails (customer confirmation + printer notification). Orders are
// not persisted server-side; the client holds the confirmation data.
type CheckoutUsecase struct {
	mailer       notification.Mailer
	printerEmail string
	printerName  string
}

func NewCheckoutUsecase(mailer notification.Mailer, printerEmail, printerName string) *CheckoutUsecase {
	return &CheckoutUsecase{
		mailer:       mailer,
		printerEmail: strings.TrimSpace(printerEmail),
		printerName:  strings.TrimSpace(printerName),
	}
}

// CheckoutRequest is the transient confirmation input. OrderDetails is the
// client's cart snapshot, treated as an opaque blob and forwarded verbatim.
type CheckoutRequest struct {
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	OrderDetails json.RawMessage `json:"orderDetails"`
}

// Confirm assigns a confirmation id and dispatches the order mails.
// The customer confirmation must succeed; a printer notification failure is
// logged but does not fail the confirmation the customer already received.
func (uc *CheckoutUsecase) Confirm(ctx context.Context, req CheckoutRequest) (string, error) {
	if uc.mailer == nil {
		return "", common.Processing("checkout: mailer not configured", nil)
	}

	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || !strings.Contains(email, "@") {
		return "", common.Validation("invalid email address")
	}
	if name == "" {
		return "", common.Validation("missing customer name")
	}
	if len(req.OrderDetails) == 0 {
		return "", common.Validation("missing order details")
	}

	orderID := uuid.NewString()

	if err := uc.mailer.SendOrderConfirmation(ctx, email, name, orderID, req.OrderDetails); err != nil {
		return "", common.Processing("order confirmation mail failed", err)
	}

	if uc.printerEmail != "" {
		if err := uc.mailer.SendPrinterNewOrder(ctx, uc.printerEmail, uc.printerName, orderID, req.OrderDetails); err != nil {
			log.Printf("[checkout_usecase] WARN: printer notification failed order=%s: %v", orderID, err)
		}
	} else {
		log.Printf("[checkout_usecase] WARN: printer email not configured, order=%s not forwarded", orderID)
	}

	return orderID, nil
}
