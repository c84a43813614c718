// internal/application/usecase/fakes_test.go
package usecase

import (
	"context"
	"encoding/json"

	"campusink/internal/domain/authflow"
)

// fakeMailer records every send and can fail selectively per operation.
type fakeMailer struct {
	welcome       []string // recipient emails
	confirmations []sentOrderMail
	printerMails  []sentOrderMail
	resets        []sentLinkMail
	verifications []sentLinkMail

	failWelcome      error
	failConfirmation error
	failPrinter      error
	failReset        error
	failVerification error
}

type sentOrderMail struct {
	email, name, orderID string
	details              json.RawMessage
}

type sentLinkMail struct {
	email, link string
}

func (m *fakeMailer) SendWelcome(_ context.Context, email, _ string) error {
	if m.failWelcome != nil {
		return m.failWelcome
	}
	m.welcome = append(m.welcome, email)
	return nil
}

func (m *fakeMailer) SendOrderConfirmation(_ context.Context, email, name, orderID string, details json.RawMessage) error {
	if m.failConfirmation != nil {
		return m.failConfirmation
	}
	m.confirmations = append(m.confirmations, sentOrderMail{email, name, orderID, details})
	return nil
}

func (m *fakeMailer) SendPrinterNewOrder(_ context.Context, email, name, orderID string, details json.RawMessage) error {
	if m.failPrinter != nil {
		return m.failPrinter
	}
	m.printerMails = append(m.printerMails, sentOrderMail{email, name, orderID, details})
	return nil
}

func (m *fakeMailer) SendPasswordReset(_ context.Context, email, link string) error {
	if m.failReset != nil {
		return m.failReset
	}
	m.resets = append(m.resets, sentLinkMail{email, link})
	return nil
}

func (m *fakeMailer) SendEmailVerification(_ context.Context, email, link string) error {
	if m.failVerification != nil {
		return m.failVerification
	}
	m.verifications = append(m.verifications, sentLinkMail{email, link})
	return nil
}

func (m *fakeMailer) totalSends() int {
	return len(m.welcome) + len(m.confirmations) + len(m.printerMails) + len(m.resets) + len(m.verifications)
}

// fakeIdentity implements authflow.IdentityProvider with canned outcomes.
type fakeIdentity struct {
	users map[string]*authflow.UserRecord

	verifyErr    error
	resetLinkErr error
	verifyUID    string

	userErr      error
	verifLinkErr error
}

func (p *fakeIdentity) VerifyToken(_ context.Context, _ string) (string, error) {
	if p.verifyErr != nil {
		return "", p.verifyErr
	}
	if p.verifyUID != "" {
		return p.verifyUID, nil
	}
	return "user-123", nil
}

func (p *fakeIdentity) GetUserByID(_ context.Context, uid string) (*authflow.UserRecord, error) {
	if p.userErr != nil {
		return nil, p.userErr
	}
	if u, ok := p.users[uid]; ok {
		return u, nil
	}
	return nil, authflow.ErrUserNotFound
}

func (p *fakeIdentity) GeneratePasswordResetLink(_ context.Context, email string) (string, error) {
	if p.resetLinkErr != nil {
		return "", p.resetLinkErr
	}
	return "https://id.example/reset?email=" + email, nil
}

func (p *fakeIdentity) GenerateEmailVerificationLink(_ context.Context, email string) (string, error) {
	if p.verifLinkErr != nil {
		return "", p.verifLinkErr
	}
	return "https://id.example/verify?email=" + email, nil
}

// fakeStorage implements asset.ObjectStorage recording writes.
type fakeStorage struct {
	bucket string

	writes    []storedObject
	published []string

	writeErr   error
	publishErr error
}

type storedObject struct {
	path        string
	data        []byte
	contentType string
	metadata    map[string]string
}

func (s *fakeStorage) Write(_ context.Context, path string, data []byte, contentType string, metadata map[string]string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes = append(s.writes, storedObject{path, data, contentType, metadata})
	return nil
}

func (s *fakeStorage) MakePublic(_ context.Context, path string) error {
	if s.publishErr != nil {
		return s.publishErr
	}
	s.published = append(s.published, path)
	return nil
}

func (s *fakeStorage) BucketName() string {
	if s.bucket == "" {
		return "campusink-assets"
	}
	return s.bucket
}
