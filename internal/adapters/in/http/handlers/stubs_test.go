// internal/adapters/in/http/handlers/stubs_test.go
package handlers

import (
	"context"
	"encoding/json"

	"campusink/internal/domain/authflow"
)

// stubMailer counts sends per operation; every failure knob defaults to nil.
type stubMailer struct {
	welcome       int
	confirmations int
	printerMails  int
	resets        int
	verifications int

	err error
}

func (m *stubMailer) SendWelcome(context.Context, string, string) error {
	if m.err != nil {
		return m.err
	}
	m.welcome++
	return nil
}

func (m *stubMailer) SendOrderConfirmation(_ context.Context, _, _, _ string, _ json.RawMessage) error {
	if m.err != nil {
		return m.err
	}
	m.confirmations++
	return nil
}

func (m *stubMailer) SendPrinterNewOrder(_ context.Context, _, _, _ string, _ json.RawMessage) error {
	if m.err != nil {
		return m.err
	}
	m.printerMails++
	return nil
}

func (m *stubMailer) SendPasswordReset(context.Context, string, string) error {
	if m.err != nil {
		return m.err
	}
	m.resets++
	return nil
}

func (m *stubMailer) SendEmailVerification(context.Context, string, string) error {
	if m.err != nil {
		return m.err
	}
	m.verifications++
	return nil
}

func (m *stubMailer) total() int {
	return m.welcome + m.confirmations + m.printerMails + m.resets + m.verifications
}

// stubIdentity serves a fixed user set; link generation never fails unless
// linkErr is set.
type stubIdentity struct {
	users   map[string]*authflow.UserRecord
	linkErr error
}

func (p *stubIdentity) VerifyToken(context.Context, string) (string, error) {
	return "user-123", nil
}

func (p *stubIdentity) GetUserByID(_ context.Context, uid string) (*authflow.UserRecord, error) {
	if u, ok := p.users[uid]; ok {
		return u, nil
	}
	return nil, authflow.ErrUserNotFound
}

func (p *stubIdentity) GeneratePasswordResetLink(_ context.Context, email string) (string, error) {
	if p.linkErr != nil {
		return "", p.linkErr
	}
	return "https://id.example/reset?email=" + email, nil
}

func (p *stubIdentity) GenerateEmailVerificationLink(_ context.Context, email string) (string, error) {
	if p.linkErr != nil {
		return "", p.linkErr
	}
	return "https://id.example/verify?email=" + email, nil
}
