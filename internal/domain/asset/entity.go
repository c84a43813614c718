// internal/domain/asset/entity.go
package asset

import (
	"crypto/rand"
	"fmt"
	"strings"

	"campusink/internal/domain/common"
)

const (
	// MaxUploadBytes is the ceiling for a single uploaded file (10 MiB).
	MaxUploadBytes = 10 << 20

	// GeneratedNameLength is the length of the random identifier used as the
	// stored filename stem. Independent of file content so the original
	// filename never leaks.
	GeneratedNameLength = 16

	nameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// AllowedImageTypes is the general-upload allow-list (design assets).
var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// DefaultProfileImageTypes is the default allow-list for profile images;
// profile uploads accept a configurable list (see UploadRequest.AllowedTypes).
var DefaultProfileImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

// UploadRequest is the transient input of one upload call.
type UploadRequest struct {
	Data        []byte
	ContentType string // declared MIME type
	Size        int64  // declared byte size
	Folder      string
	OwnerID     string // derived from a verified auth token
	Optimize    bool

	// AllowedTypes overrides AllowedImageTypes when non-empty
	// (profile uploads pass their configured list).
	AllowedTypes []string
}

// StoredAsset is the immutable result of a successful upload.
type StoredAsset struct {
	URL         string `json:"url"`
	Path        string `json:"path"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Validate checks the request against the allow-list and size ceiling.
// Violations name the specific constraint breached (type vs size) so the
// client can distinguish them. Validation runs before any optimization or
// storage call.
func (r UploadRequest) Validate() error {
	allowed := r.AllowedTypes
	if len(allowed) == 0 {
		allowed = AllowedImageTypes
	}

	ct := strings.ToLower(strings.TrimSpace(r.ContentType))
	ok := false
	for _, a := range allowed {
		if ct == a {
			ok = true
			break
		}
	}
	if !ok {
		return common.Validation("unsupported file type %q (allowed: %s)", r.ContentType, strings.Join(allowed, ", "))
	}

	if r.Size > MaxUploadBytes {
		return common.Validation("file too large: %d bytes (max %d)", r.Size, MaxUploadBytes)
	}
	if len(r.Data) == 0 {
		return common.Validation("file is empty")
	}
	return nil
}

// NewFileName generates the stored filename: a fixed-length random token
// from a restricted alphanumeric alphabet plus the extension.
func NewFileName(ext string) (string, error) {
	buf := make([]byte, GeneratedNameLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("asset: random name: %w", err)
	}
	for i, b := range buf {
		buf[i] = nameAlphabet[int(b)%len(nameAlphabet)]
	}

	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		ext = "bin"
	}
	return string(buf) + "." + ext, nil
}

// ObjectPath composes the storage path as folder/ownerID/fileName.
func ObjectPath(folder, ownerID, fileName string) string {
	f := strings.Trim(strings.TrimSpace(folder), "/")
	o := strings.Trim(strings.TrimSpace(ownerID), "/")
	return f + "/" + o + "/" + fileName
}

// ExtensionFor maps a MIME type to the stored file extension.
func ExtensionFor(contentType string) string {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "bin"
	}
}
