// internal/application/usecase/upload_usecase.go
package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"campusink/internal/domain/asset"
	"campusink/internal/domain/common"
	"campusink/internal/infra/imaging"
)

// UploadUsecase runs the image upload pipeline: validate, optionally
// optimize, derive a collision-resistant path, persist, publish.
type UploadUsecase struct {
	storage asset.ObjectStorage
}

func NewUploadUsecase(storage asset.ObjectStorage) *UploadUsecase {
	return &UploadUsecase{storage: storage}
}

// Upload performs one upload call. Validation short-circuits before any
// optimization or storage I/O; optimization and storage failures surface as
// processing errors carrying the underlying message. Nothing is retried.
func (uc *UploadUsecase) Upload(ctx context.Context, req asset.UploadRequest) (*asset.StoredAsset, error) {
	if uc.storage == nil {
		return nil, common.Processing("upload: storage not configured", nil)
	}

	owner := strings.TrimSpace(req.OwnerID)
	if owner == "" {
		return nil, common.Auth("missing owner identity")
	}
	folder := strings.Trim(strings.TrimSpace(req.Folder), "/")
	if folder == "" {
		return nil, common.Validation("missing target folder")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	data := req.Data
	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	ext := asset.ExtensionFor(contentType)

	if req.Optimize {
		res, err := imaging.Optimize(req.Data)
		if err != nil {
			return nil, common.Processing("image optimization failed", err)
		}
		data = res.Data
		contentType = imaging.OutputContentType
		ext = imaging.OutputExt
		log.Printf("[upload_usecase] optimized owner=%s folder=%s %dx%d bytes=%d",
			owner, folder, res.Width, res.Height, len(data))
	}

	fileName, err := asset.NewFileName(ext)
	if err != nil {
		return nil, common.Processing("filename generation failed", err)
	}
	path := asset.ObjectPath(folder, owner, fileName)

	metadata := map[string]string{
		"ownerId":  owner,
		"folder":   folder,
		"original": contentType,
	}
	if err := uc.storage.Write(ctx, path, data, contentType, metadata); err != nil {
		return nil, common.Processing("storage write failed", err)
	}
	if err := uc.storage.MakePublic(ctx, path); err != nil {
		return nil, common.Processing("storage publish failed", err)
	}

	// Public URL is computed from the bucket-name convention; the storage
	// collaborator never returns one (no signed-URL logic).
	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", uc.storage.BucketName(), path)

	log.Printf("[upload_usecase] stored path=%s type=%s bytes=%d", path, contentType, len(data))

	return &asset.StoredAsset{
		URL:         url,
		Path:        path,
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}
