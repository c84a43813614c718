// internal/domain/authflow/identity_port.go
package authflow

import (
	"context"
	"errors"
)

// Tagged identity-provider errors. The adapter maps the provider's stable
// code strings ("user-not-found", "too-many-requests") onto these sentinels;
// the flows branch on them and wrap everything else as a processing failure.
// Action-code errors never reach this port: code confirmation happens in the
// provider's client SDK, not here.
var (
	ErrUserNotFound    = errors.New("authflow: user not found")
	ErrTooManyRequests = errors.New("authflow: too many requests")
)

// UserRecord is the subset of the provider's user entity the flows need.
type UserRecord struct {
	UID           string
	Email         string
	DisplayName   string
	EmailVerified bool
}

// IdentityProvider is the outbound port to the identity collaborator.
// The provider is the system of record for account existence; nothing here
// is persisted locally.
type IdentityProvider interface {
	// VerifyToken validates a bearer ID token and returns the owner id.
	VerifyToken(ctx context.Context, token string) (string, error)

	// GetUserByID returns the user record or ErrUserNotFound.
	GetUserByID(ctx context.Context, uid string) (*UserRecord, error)

	// GeneratePasswordResetLink returns a provider-issued reset link for the
	// email, or ErrUserNotFound when no such account exists.
	GeneratePasswordResetLink(ctx context.Context, email string) (string, error)

	// GenerateEmailVerificationLink returns a provider-issued verification
	// link for the email.
	GenerateEmailVerificationLink(ctx context.Context, email string) (string, error)
}
