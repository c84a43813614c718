// internal/domain/product/repository_port.go
package product

import "context"

// Repository is the read-model port for the catalog. The storefront only
// reads products; catalog administration happens outside this service.
type Repository interface {
	// List returns all products ordered by creation time (newest first).
	List(ctx context.Context) ([]Product, error)

	// GetByID returns the product or ErrNotFound.
	GetByID(ctx context.Context, id string) (Product, error)
}
