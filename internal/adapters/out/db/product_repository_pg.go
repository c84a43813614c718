// internal/adapters/out/db/product_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	proddom "campusink/internal/domain/product"
)

// ProductRepositoryPG implements product.Repository using PostgreSQL.
// Sizes and colors are stored as text[] columns.
type ProductRepositoryPG struct {
	DB *sql.DB
}

func NewProductRepositoryPG(db *sql.DB) *ProductRepositoryPG {
	return &ProductRepositoryPG{DB: db}
}

// List returns the full catalog, newest first.
func (r *ProductRepositoryPG) List(ctx context.Context) ([]proddom.Product, error) {
	if r.DB == nil {
		return nil, errors.New("ProductRepositoryPG: nil db")
	}

	const q = `
SELECT id, name, description, price, image, sizes, colors, created_at
FROM products
ORDER BY created_at DESC
`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []proddom.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID returns a single product or product.ErrNotFound.
func (r *ProductRepositoryPG) GetByID(ctx context.Context, id string) (proddom.Product, error) {
	if r.DB == nil {
		return proddom.Product{}, errors.New("ProductRepositoryPG: nil db")
	}

	const q = `
SELECT id, name, description, price, image, sizes, colors, created_at
FROM products
WHERE id = $1
`
	row := r.DB.QueryRowContext(ctx, q, strings.TrimSpace(id))
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return proddom.Product{}, proddom.ErrNotFound
		}
		return proddom.Product{}, err
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (proddom.Product, error) {
	var (
		p      proddom.Product
		sizes  pq.StringArray
		colors pq.StringArray
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &sizes, &colors, &p.CreatedAt); err != nil {
		return proddom.Product{}, err
	}
	p.Sizes = []string(sizes)
	p.Colors = []string(colors)
	return p, nil
}
