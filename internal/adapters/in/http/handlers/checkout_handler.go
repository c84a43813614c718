// internal/adapters/in/http/handlers/checkout_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	usecase "campusink/internal/application/usecase"
	"campusink/internal/domain/common"
)

// CheckoutHandler serves POST /checkout/confirm.
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) http.Handler {
	return &CheckoutHandler{uc: uc}
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if h.uc == nil {
		writeError(w, common.Processing("checkout handler is not configured", nil))
		return
	}

	var req usecase.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.Validation("invalid request body: %v", err))
		return
	}

	orderID, err := h.uc.Confirm(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]any{"orderId": orderID})
}
