// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"campusink/internal/domain/authflow"
)

// context keys use a private struct type to avoid collisions (SA1029).
type ctxKey struct{ name string }

var ctxKeyOwnerID = ctxKey{name: "ownerId"}

// Auth verifies "Authorization: Bearer <ID_TOKEN>" against the identity
// provider and injects the owner id into the request context. Missing or
// invalid credentials answer 401 before the handler runs.
type Auth struct {
	Identity authflow.IdentityProvider
}

func (m *Auth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Identity == nil {
			unauthorized(w, "auth middleware not initialized")
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(w, "missing bearer token")
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			unauthorized(w, "empty bearer token")
			return
		}

		ownerID, err := m.Identity.VerifyToken(r.Context(), idToken)
		if err != nil {
			log.Printf("[auth_middleware] path=%s token rejected: %v", r.URL.Path, err)
			unauthorized(w, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyOwnerID, ownerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OwnerID returns the verified owner id injected by Auth.
func OwnerID(r *http.Request) (string, bool) {
	v := r.Context().Value(ctxKeyOwnerID)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}
