// internal/domain/asset/storage_port.go
package asset

import "context"

// ObjectStorage is the outbound port for durable blob storage.
//
// The upload pipeline computes the public URL itself from the bucket-name
// convention; implementations never return URLs. Deletion is owned by the
// storage collaborator and intentionally absent here.
type ObjectStorage interface {
	// Write persists data at path with the given content type and metadata.
	Write(ctx context.Context, path string, data []byte, contentType string, metadata map[string]string) error

	// MakePublic marks the object at path publicly readable.
	MakePublic(ctx context.Context, path string) error

	// BucketName returns the bucket the adapter writes into, used for
	// deterministic public URL composition.
	BucketName() string
}
