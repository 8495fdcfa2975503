// FILE: internal/repository/contract/catalog_repository.go
// Repository interface for the product catalog
package contract

import (
	"context"

	"ai-shopassist-be/internal/entity"
)

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]string, error)
	// FindByCategory returns an empty slice for unknown categories, never an
	// error for "not found".
	FindByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	UpsertMany(ctx context.Context, products []*entity.Product) error
	CountAll(ctx context.Context) (int64, error)
}
