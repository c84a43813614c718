// internal/adapters/out/gcs/asset_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/storage"
)

// AssetRepositoryGCS implements asset.ObjectStorage backed by Google Cloud
// Storage. GCS has no real folders; the upload path's "folder/ownerId/"
// segments are plain object-name prefixes.
type AssetRepositoryGCS struct {
	Client *storage.Client
	Bucket string
}

// NewAssetRepositoryGCS creates a GCS-backed asset store. An empty bucket is
// kept as-is and errors at use time (configuration decides whether it is
// required).
func NewAssetRepositoryGCS(client *storage.Client, bucket string) *AssetRepositoryGCS {
	return &AssetRepositoryGCS{
		Client: client,
		Bucket: strings.TrimSpace(bucket),
	}
}

func (r *AssetRepositoryGCS) effectiveBucket() (string, error) {
	b := strings.TrimSpace(r.Bucket)
	if b == "" {
		return "", errors.New("AssetRepositoryGCS: bucket is empty")
	}
	return b, nil
}

// Write stores data at path with the given content type and metadata.
func (r *AssetRepositoryGCS) Write(ctx context.Context, path string, data []byte, contentType string, metadata map[string]string) error {
	if r.Client == nil {
		return errors.New("AssetRepositoryGCS: nil storage client")
	}
	bucketName, err := r.effectiveBucket()
	if err != nil {
		return err
	}

	objName := strings.TrimLeft(strings.TrimSpace(path), "/")
	if objName == "" {
		return errors.New("AssetRepositoryGCS: path is empty")
	}

	w := r.Client.Bucket(bucketName).Object(objName).NewWriter(ctx)
	w.ContentType = strings.TrimSpace(contentType)
	if len(metadata) > 0 {
		w.Metadata = metadata
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// MakePublic grants allUsers read access on the object.
func (r *AssetRepositoryGCS) MakePublic(ctx context.Context, path string) error {
	if r.Client == nil {
		return errors.New("AssetRepositoryGCS: nil storage client")
	}
	bucketName, err := r.effectiveBucket()
	if err != nil {
		return err
	}

	objName := strings.TrimLeft(strings.TrimSpace(path), "/")
	if objName == "" {
		return errors.New("AssetRepositoryGCS: path is empty")
	}

	return r.Client.Bucket(bucketName).Object(objName).ACL().Set(ctx, storage.AllUsers, storage.RoleReader)
}

// BucketName exposes the configured bucket for public URL composition.
func (r *AssetRepositoryGCS) BucketName() string {
	return strings.TrimSpace(r.Bucket)
}
