// internal/application/usecase/authflow_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"campusink/internal/domain/authflow"
	"campusink/internal/domain/common"
	"campusink/internal/domain/notification"
)

// AuthFlowUsecase bridges client-initiated password-reset and
// email-verification actions to identity-provider link generation and email
// dispatch.
type AuthFlowUsecase struct {
	identity authflow.IdentityProvider
	mailer   notification.Mailer
}

func NewAuthFlowUsecase(identity authflow.IdentityProvider, mailer notification.Mailer) *AuthFlowUsecase {
	return &AuthFlowUsecase{identity: identity, mailer: mailer}
}

// RequestPasswordReset generates a reset link for email and mails it.
//
// When the provider reports the account as unknown, the flow completes as a
// generic success without sending anything. Identical responses for existing
// and non-existing accounts keep callers from probing account existence.
func (uc *AuthFlowUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	if uc.identity == nil || uc.mailer == nil {
		return common.Processing("authflow: not configured", nil)
	}

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return common.Validation("invalid email address")
	}

	link, err := uc.identity.GeneratePasswordResetLink(ctx, email)
	if err != nil {
		if errors.Is(err, authflow.ErrUserNotFound) {
			// Suppressed on purpose: no mail, generic success.
			log.Printf("[authflow_usecase] reset requested for unknown account (suppressed)")
			return nil
		}
		return common.Processing("password reset link generation failed", err)
	}

	if err := uc.mailer.SendPasswordReset(ctx, email, link); err != nil {
		return common.Processing("password reset mail failed", err)
	}
	return nil
}

// SendVerification looks up the user, generates a verification link and
// mails it.
//
// Unlike password reset, an unknown user id answers not-found here. The
// asymmetry mirrors the storefront's observed behavior and is kept as is.
func (uc *AuthFlowUsecase) SendVerification(ctx context.Context, uid string) error {
	if uc.identity == nil || uc.mailer == nil {
		return common.Processing("authflow: not configured", nil)
	}

	uid = strings.TrimSpace(uid)
	if uid == "" {
		return common.Validation("missing user id")
	}

	user, err := uc.identity.GetUserByID(ctx, uid)
	if err != nil {
		switch {
		case errors.Is(err, authflow.ErrUserNotFound):
			return common.NotFound("user not found")
		case errors.Is(err, authflow.ErrTooManyRequests):
			return common.RateLimit("too many verification requests")
		default:
			return common.Processing("user lookup failed", err)
		}
	}

	link, err := uc.identity.GenerateEmailVerificationLink(ctx, user.Email)
	if err != nil {
		if errors.Is(err, authflow.ErrTooManyRequests) {
			return common.RateLimit("too many verification requests")
		}
		return common.Processing("verification link generation failed", err)
	}

	if err := uc.mailer.SendEmailVerification(ctx, user.Email, link); err != nil {
		return common.Processing("verification mail failed", err)
	}
	return nil
}
