// internal/adapters/in/http/handlers/notification_handler.go
package handlers

import (
	"io"
	"net/http"

	usecase "campusink/internal/application/usecase"
	"campusink/internal/domain/common"
	"campusink/internal/domain/notification"
)

// NotificationHandler serves POST /notifications: parse the tagged payload,
// dispatch exactly one send.
type NotificationHandler struct {
	uc *usecase.NotificationUsecase
}

func NewNotificationHandler(uc *usecase.NotificationUsecase) http.Handler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if h.uc == nil {
		writeError(w, common.Processing("notification handler is not configured", nil))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, common.Validation("unreadable body: %v", err))
		return
	}

	req, err := notification.Parse(body)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.uc.Dispatch(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
