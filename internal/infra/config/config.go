// internal/infra/config/config.go
package config

import (
	"os"
	"strings"
)

// Config holds the environment configuration for the storefront backend.
type Config struct {
	Port string

	// Google Cloud
	ProjectID          string
	GCSBucket          string
	GCPCreds           string
	FirestoreProjectID string
	FirebaseProjectID  string

	// SendGrid
	SendGridAPIKey string
	// SendGridAPIKeySecret names a Secret Manager secret used when
	// SENDGRID_API_KEY is not set directly (Cloud Run deployments).
	SendGridAPIKeySecret string
	SendGridFrom         string
	SendGridFromName     string

	// Storefront
	AppBaseURL   string
	PrinterEmail string
	PrinterName  string

	// ProfileImageTypes is the configurable allow-list for profile image
	// uploads (CSV of MIME types); empty means the built-in default.
	ProfileImageTypes []string

	// Catalog database (optional; catalog endpoints mount only when set)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

// Load reads the environment and returns the Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "campusink-store")

	return &Config{
		Port: getenvDefault("PORT", "8080"),

		ProjectID:          defaultProject,
		GCSBucket:          os.Getenv("GCS_BUCKET"),
		GCPCreds:           os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirestoreProjectID: getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirebaseProjectID:  getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		SendGridAPIKey:       os.Getenv("SENDGRID_API_KEY"),
		SendGridAPIKeySecret: os.Getenv("SENDGRID_API_KEY_SECRET"),
		SendGridFrom:         getenvDefault("SENDGRID_FROM", "no-reply@campusink.store"),
		SendGridFromName:     getenvDefault("SENDGRID_FROM_NAME", "Campus Ink"),

		AppBaseURL:   getenvDefault("APP_BASE_URL", "https://campusink.store"),
		PrinterEmail: os.Getenv("PRINTER_EMAIL"),
		PrinterName:  getenvDefault("PRINTER_NAME", "Print Shop"),

		ProfileImageTypes: splitCSV(os.Getenv("PROFILE_IMAGE_TYPES")),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getenvDefault("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}
}

// HasCatalogDB reports whether the catalog database is configured.
func (c *Config) HasCatalogDB() bool {
	return strings.TrimSpace(c.DBHost) != "" && strings.TrimSpace(c.DBName) != ""
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, strings.ToLower(t))
		}
	}
	return out
}
