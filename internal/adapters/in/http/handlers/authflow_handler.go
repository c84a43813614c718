// internal/adapters/in/http/handlers/authflow_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	usecase "campusink/internal/application/usecase"
	"campusink/internal/domain/common"
)

// AuthFlowHandler serves the auth-adjacent endpoints:
//
//	POST /auth/password-reset  {"email": "..."}
//	POST /auth/verification    {"userId": "..."}
//	GET  /auth/verify?oobCode=...   (provider redirect, answers 302)
type AuthFlowHandler struct {
	uc         *usecase.AuthFlowUsecase
	appBaseURL string
}

func NewAuthFlowHandler(uc *usecase.AuthFlowUsecase, appBaseURL string) http.Handler {
	return &AuthFlowHandler{
		uc:         uc,
		appBaseURL: strings.TrimRight(strings.TrimSpace(appBaseURL), "/"),
	}
}

func (h *AuthFlowHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(path, "/password-reset"):
		h.handlePasswordReset(w, r)
	case r.Method == http.MethodPost && strings.HasSuffix(path, "/verification"):
		h.handleVerificationSend(w, r)
	case r.Method == http.MethodGet && strings.HasSuffix(path, "/verify"):
		h.handleVerifyRedirect(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (h *AuthFlowHandler) handlePasswordReset(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeError(w, common.Processing("auth flow handler is not configured", nil))
		return
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, common.Validation("invalid request body: %v", err))
		return
	}

	if err := h.uc.RequestPasswordReset(r.Context(), body.Email); err != nil {
		writeError(w, err)
		return
	}

	// Same message whether or not the account exists.
	writeSuccess(w, map[string]any{
		"message": "If an account exists for that address, a reset link has been sent.",
	})
}

func (h *AuthFlowHandler) handleVerificationSend(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeError(w, common.Processing("auth flow handler is not configured", nil))
		return
	}

	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, common.Validation("invalid request body: %v", err))
		return
	}

	if err := h.uc.SendVerification(r.Context(), body.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]any{"message": "Verification email sent."})
}

// handleVerifyRedirect forwards the provider's one-time code to the client
// page that performs the actual verification call; the code is only
// verifiable by the provider's client SDK. A missing code is itself an error
// redirect, never a 4xx, so the provider's redirect chain always lands on a
// rendered page.
func (h *AuthFlowHandler) handleVerifyRedirect(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(r.URL.Query().Get("oobCode"))

	target := h.appBaseURL + "/verify-email"
	if code == "" {
		target += "?error=missing-code"
	} else {
		target += "?oobCode=" + url.QueryEscape(code)
	}

	http.Redirect(w, r, target, http.StatusFound)
}
