// internal/infra/config/secret.go
package config

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// ResolveSendGridAPIKey returns the SendGrid API key: the env value when
// present, otherwise the named Secret Manager secret (latest version).
func (c *Config) ResolveSendGridAPIKey(ctx context.Context) (string, error) {
	if key := strings.TrimSpace(c.SendGridAPIKey); key != "" {
		return key, nil
	}

	secretID := strings.TrimSpace(c.SendGridAPIKeySecret)
	if secretID == "" {
		return "", errors.New("config: neither SENDGRID_API_KEY nor SENDGRID_API_KEY_SECRET is set")
	}
	prj := strings.TrimSpace(c.ProjectID)
	if prj == "" {
		return "", errors.New("config: project id is empty")
	}

	sm, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", errors.New("config: secretmanager client: " + err.Error())
	}
	defer sm.Close()

	name := "projects/" + prj + "/secrets/" + secretID + "/versions/latest"
	resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", errors.New("config: AccessSecretVersion failed (" + name + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("config: empty secret payload (" + name + ")")
	}

	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
