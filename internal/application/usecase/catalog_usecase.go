// internal/application/usecase/catalog_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	"campusink/internal/domain/common"
	proddom "campusink/internal/domain/product"
)

// CatalogUsecase serves the read-only product catalog.
type CatalogUsecase struct {
	repo proddom.Repository
}

func NewCatalogUsecase(repo proddom.Repository) *CatalogUsecase {
	return &CatalogUsecase{repo: repo}
}

func (uc *CatalogUsecase) List(ctx context.Context) ([]proddom.Product, error) {
	if uc.repo == nil {
		return nil, common.Processing("catalog: repository not configured", nil)
	}
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, common.Processing("catalog list failed", err)
	}
	if items == nil {
		items = []proddom.Product{}
	}
	return items, nil
}

func (uc *CatalogUsecase) Get(ctx context.Context, id string) (proddom.Product, error) {
	if uc.repo == nil {
		return proddom.Product{}, common.Processing("catalog: repository not configured", nil)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return proddom.Product{}, common.Validation("missing product id")
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, proddom.ErrNotFound) {
			return proddom.Product{}, common.NotFound("product not found")
		}
		return proddom.Product{}, common.Processing("catalog get failed", err)
	}
	return p, nil
}
