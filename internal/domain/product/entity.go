// internal/domain/product/entity.go
package product

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("product: not found")

// Product is one catalog entry: a university-branded apparel item the
// storefront offers for customization.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Sizes       []string  `json:"sizes"`
	Colors      []string  `json:"colors"`
	CreatedAt   time.Time `json:"createdAt"`
}
