// internal/application/usecase/notification_usecase.go
package usecase

import (
	"context"

	"campusink/internal/domain/common"
	"campusink/internal/domain/notification"
)

// NotificationUsecase routes a validated notification request to exactly one
// mailer operation. It holds no state; concurrent requests are independent.
type NotificationUsecase struct {
	mailer notification.Mailer
}

func NewNotificationUsecase(mailer notification.Mailer) *NotificationUsecase {
	return &NotificationUsecase{mailer: mailer}
}

// Dispatch executes the single send operation selected by the request's tag.
// Parse has already rejected unknown tags, so the switch is exhaustive with
// no default branch. A downstream failure is surfaced, never retried.
func (uc *NotificationUsecase) Dispatch(ctx context.Context, req *notification.Request) error {
	if uc.mailer == nil {
		return common.Processing("notification: mailer not configured", nil)
	}
	if req == nil {
		return common.Validation("missing notification request")
	}

	var err error
	switch req.Kind {
	case notification.KindWelcome:
		d := req.Welcome
		err = uc.mailer.SendWelcome(ctx, d.Email, d.Name)
	case notification.KindOrderConfirmation:
		d := req.OrderConfirmation
		err = uc.mailer.SendOrderConfirmation(ctx, d.Email, d.Name, d.OrderID, d.OrderDetails)
	case notification.KindPrinterNewOrder:
		d := req.PrinterNewOrder
		err = uc.mailer.SendPrinterNewOrder(ctx, d.PrinterEmail, d.PrinterName, d.OrderID, d.OrderDetails)
	}

	if err != nil {
		return common.Processing("notification send failed", err)
	}
	return nil
}
