// internal/adapters/in/http/handlers/upload_handler.go
package handlers

import (
	"io"
	"net/http"
	"strings"

	"campusink/internal/adapters/in/http/middleware"
	usecase "campusink/internal/application/usecase"
	"campusink/internal/domain/asset"
	"campusink/internal/domain/common"
)

// maxMultipartMemory bounds the in-memory part of multipart parsing; the
// upload ceiling itself lives in the asset domain.
const maxMultipartMemory = 12 << 20

// UploadHandler serves POST /upload and POST /upload/profile.
// Requests pass the auth middleware first; the owner id comes from the
// verified token, never from the body.
type UploadHandler struct {
	uc *usecase.UploadUsecase

	// profileTypes is the configurable allow-list for /upload/profile.
	profileTypes []string
}

func NewUploadHandler(uc *usecase.UploadUsecase, profileTypes []string) http.Handler {
	if len(profileTypes) == 0 {
		profileTypes = asset.DefaultProfileImageTypes
	}
	return &UploadHandler{uc: uc, profileTypes: profileTypes}
}

func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if h.uc == nil {
		writeError(w, common.Processing("upload handler is not configured", nil))
		return
	}

	ownerID, ok := middleware.OwnerID(r)
	if !ok {
		writeError(w, common.Auth("missing owner identity"))
		return
	}

	profile := strings.HasSuffix(strings.TrimRight(r.URL.Path, "/"), "/profile")

	r.Body = http.MaxBytesReader(w, r.Body, maxMultipartMemory)
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, common.Validation("invalid multipart body: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, common.Validation("missing file field"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, common.Validation("unreadable file: %v", err))
		return
	}

	req := asset.UploadRequest{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		OwnerID:     ownerID,
		Optimize:    parseBoolDefault(r.FormValue("optimize"), true),
	}

	if profile {
		req.Folder = "profile"
		req.AllowedTypes = h.profileTypes
	} else {
		req.Folder = strings.TrimSpace(r.FormValue("folder"))
		if req.Folder == "" {
			req.Folder = "designs"
		}
	}

	stored, err := h.uc.Upload(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]any{
		"url":         stored.URL,
		"path":        stored.Path,
		"fileName":    stored.FileName,
		"contentType": stored.ContentType,
		"size":        stored.Size,
	})
}

func parseBoolDefault(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return def
	}
}
