// internal/domain/notification/request.go
package notification

import (
	"encoding/json"
	"strings"

	"campusink/internal/domain/common"
)

// Kind discriminates the notification shapes. Exactly one send operation
// exists per kind; unknown tags are rejected at parse time so dispatch can
// switch exhaustively with no default branch.
type Kind string

const (
	KindWelcome           Kind = "welcome"
	KindOrderConfirmation Kind = "order_confirmation"
	KindPrinterNewOrder   Kind = "printer_new_order"
)

// WelcomeData is the payload of a welcome notification.
type WelcomeData struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// OrderConfirmationData is the payload of an order-confirmation notification.
// OrderDetails is an opaque, already-validated blob: the core never inspects
// its shape, only forwards it verbatim to the mailer.
type OrderConfirmationData struct {
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	OrderID      string          `json:"orderId"`
	OrderDetails json.RawMessage `json:"orderDetails"`
}

// PrinterNewOrderData is the payload of a printer new-order notification.
type PrinterNewOrderData struct {
	PrinterEmail string          `json:"printerEmail"`
	PrinterName  string          `json:"printerName"`
	OrderID      string          `json:"orderId"`
	OrderDetails json.RawMessage `json:"orderDetails"`
}

// Request is the tagged variant: Kind selects which one of the payload
// pointers is non-nil.
type Request struct {
	Kind              Kind
	Welcome           *WelcomeData
	OrderConfirmation *OrderConfirmationData
	PrinterNewOrder   *PrinterNewOrderData
}

type rawEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Parse validates a raw JSON body into exactly one variant. Validation is
// structural and type-discriminated: required data fields depend on the tag.
// All failures are validation errors; nothing is dispatched on failure.
func Parse(body []byte) (*Request, error) {
	var env rawEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, common.Validation("invalid request body: %v", err)
	}

	kind := Kind(strings.TrimSpace(env.Type))
	if len(env.Data) == 0 {
		return nil, common.Validation("missing data")
	}

	switch kind {
	case KindWelcome:
		var d WelcomeData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, common.Validation("invalid welcome data: %v", err)
		}
		if strings.TrimSpace(d.Email) == "" || strings.TrimSpace(d.Name) == "" {
			return nil, common.Validation("welcome requires email and name")
		}
		return &Request{Kind: KindWelcome, Welcome: &d}, nil

	case KindOrderConfirmation:
		var d OrderConfirmationData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, common.Validation("invalid order_confirmation data: %v", err)
		}
		if strings.TrimSpace(d.Email) == "" || strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.OrderID) == "" {
			return nil, common.Validation("order_confirmation requires email, name and orderId")
		}
		return &Request{Kind: KindOrderConfirmation, OrderConfirmation: &d}, nil

	case KindPrinterNewOrder:
		var d PrinterNewOrderData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, common.Validation("invalid printer_new_order data: %v", err)
		}
		if strings.TrimSpace(d.PrinterEmail) == "" || strings.TrimSpace(d.PrinterName) == "" || strings.TrimSpace(d.OrderID) == "" {
			return nil, common.Validation("printer_new_order requires printerEmail, printerName and orderId")
		}
		return &Request{Kind: KindPrinterNewOrder, PrinterNewOrder: &d}, nil

	default:
		return nil, common.Validation("unknown notification type %q", env.Type)
	}
}
