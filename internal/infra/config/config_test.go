// internal/infra/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadSenderDefaults(t *testing.T) {
	t.Setenv("SENDGRID_FROM", "")
	t.Setenv("SENDGRID_FROM_NAME", "")

	cfg := Load()
	assert.Equal(t, "no-reply@campusink.store", cfg.SendGridFrom)
	assert.Equal(t, "Campus Ink", cfg.SendGridFromName)
}

func TestLoadSenderOverrides(t *testing.T) {
	t.Setenv("SENDGRID_FROM", "shop@example.edu")
	t.Setenv("SENDGRID_FROM_NAME", "Example Shop")

	cfg := Load()
	assert.Equal(t, "shop@example.edu", cfg.SendGridFrom)
	assert.Equal(t, "Example Shop", cfg.SendGridFromName)
}

func TestHasCatalogDB(t *testing.T) {
	c := &Config{}
	assert.False(t, c.HasCatalogDB())

	c.DBHost = "localhost"
	assert.False(t, c.HasCatalogDB())

	c.DBName = "campusink"
	assert.True(t, c.HasCatalogDB())
}
