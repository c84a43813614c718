// internal/adapters/out/identity/firebase_identity.go
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/errorutils"

	"campusink/internal/domain/authflow"
)

// FirebaseIdentity implements authflow.IdentityProvider on the Firebase
// Admin SDK. Provider failures carrying stable codes ("user-not-found",
// "too-many-requests") map onto the authflow sentinels; everything else
// passes through wrapped.
type FirebaseIdentity struct {
	Auth *fbauth.Client

	// ContinueURL is embedded in generated action links so the provider
	// redirects back into the storefront after the action completes.
	ContinueURL string
}

func NewFirebaseIdentity(auth *fbauth.Client, continueURL string) *FirebaseIdentity {
	return &FirebaseIdentity{
		Auth:        auth,
		ContinueURL: strings.TrimSpace(continueURL),
	}
}

func (p *FirebaseIdentity) settings() *fbauth.ActionCodeSettings {
	if p.ContinueURL == "" {
		return nil
	}
	return &fbauth.ActionCodeSettings{URL: p.ContinueURL}
}

// VerifyToken validates a bearer ID token and returns the Firebase UID.
func (p *FirebaseIdentity) VerifyToken(ctx context.Context, token string) (string, error) {
	if p.Auth == nil {
		return "", errors.New("FirebaseIdentity: nil auth client")
	}
	t, err := p.Auth.VerifyIDToken(ctx, strings.TrimSpace(token))
	if err != nil {
		return "", fmt.Errorf("verify id token: %w", err)
	}
	uid := strings.TrimSpace(t.UID)
	if uid == "" {
		return "", errors.New("FirebaseIdentity: empty uid in token")
	}
	return uid, nil
}

// GetUserByID fetches the user record by UID.
func (p *FirebaseIdentity) GetUserByID(ctx context.Context, uid string) (*authflow.UserRecord, error) {
	if p.Auth == nil {
		return nil, errors.New("FirebaseIdentity: nil auth client")
	}
	u, err := p.Auth.GetUser(ctx, strings.TrimSpace(uid))
	if err != nil {
		return nil, mapIdentityError(err)
	}
	return &authflow.UserRecord{
		UID:           u.UID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		EmailVerified: u.EmailVerified,
	}, nil
}

// GeneratePasswordResetLink returns a provider-issued reset link.
func (p *FirebaseIdentity) GeneratePasswordResetLink(ctx context.Context, email string) (string, error) {
	if p.Auth == nil {
		return "", errors.New("FirebaseIdentity: nil auth client")
	}
	var (
		link string
		err  error
	)
	if s := p.settings(); s != nil {
		link, err = p.Auth.PasswordResetLinkWithSettings(ctx, strings.TrimSpace(email), s)
	} else {
		link, err = p.Auth.PasswordResetLink(ctx, strings.TrimSpace(email))
	}
	if err != nil {
		return "", mapIdentityError(err)
	}
	return link, nil
}

// GenerateEmailVerificationLink returns a provider-issued verification link.
func (p *FirebaseIdentity) GenerateEmailVerificationLink(ctx context.Context, email string) (string, error) {
	if p.Auth == nil {
		return "", errors.New("FirebaseIdentity: nil auth client")
	}
	var (
		link string
		err  error
	)
	if s := p.settings(); s != nil {
		link, err = p.Auth.EmailVerificationLinkWithSettings(ctx, strings.TrimSpace(email), s)
	} else {
		link, err = p.Auth.EmailVerificationLink(ctx, strings.TrimSpace(email))
	}
	if err != nil {
		return "", mapIdentityError(err)
	}
	return link, nil
}

// mapIdentityError translates Firebase error codes into the authflow
// sentinels; unrecognized errors pass through wrapped so callers can still
// log the provider detail.
func mapIdentityError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToUpper(err.Error())
	switch {
	case fbauth.IsUserNotFound(err) || strings.Contains(msg, "EMAIL_NOT_FOUND"):
		return authflow.ErrUserNotFound
	case errorutils.IsResourceExhausted(err) || strings.Contains(msg, "TOO_MANY"):
		return authflow.ErrTooManyRequests
	default:
		return fmt.Errorf("identity provider: %w", err)
	}
}
