// FILE: internal/service/catalog_service.go
package service

import (
	"context"
	"encoding/json"
	"strings"

	"ai-shopassist-be/internal/dto"
	"ai-shopassist-be/internal/repository/contract"
	"ai-shopassist-be/pkg/catalog"
)

type ICatalogService interface {
	GetCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	GetProducts(ctx context.Context, category string) (*dto.ProductsResponse, error)
}

type catalogService struct {
	accessor *catalog.Accessor
}

func NewCatalogService(accessor *catalog.Accessor) ICatalogService {
	return &catalogService{accessor: accessor}
}

func (s *catalogService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.accessor.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CategoriesResponse{Categories: categories}, nil
}

func (s *catalogService) GetProducts(ctx context.Context, category string) (*dto.ProductsResponse, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	products, err := s.accessor.Products(ctx, category)
	if err != nil {
		return nil, err
	}

	res := &dto.ProductsResponse{Category: category, Products: make([]dto.ProductDTO, 0, len(products))}
	for _, p := range products {
		res.Products = append(res.Products, dto.ProductDTO{
			Name:     p.Name,
			Brand:    p.Brand,
			Price:    p.Price,
			Features: p.Features,
			Image:    p.Image,
			Category: p.Category,
		})
	}
	return res, nil
}

// repositorySource adapts the GORM catalog repository to the accessor's
// Source contract. Stored prices are re-encoded as raw JSON so the accessor
// applies the same normalization to database rows as to any other feed.
type repositorySource struct {
	repo contract.CatalogRepository
}

func NewCatalogSource(repo contract.CatalogRepository) catalog.Source {
	return &repositorySource{repo: repo}
}

func (s *repositorySource) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

func (s *repositorySource) FetchProducts(ctx context.Context, category string) ([]catalog.RawProduct, error) {
	entities, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	raws := make([]catalog.RawProduct, 0, len(entities))
	for _, ent := range entities {
		price, _ := json.Marshal(ent.Price)
		raws = append(raws, catalog.RawProduct{
			Name:           ent.Name,
			Brand:          ent.Brand,
			Price:          price,
			Specifications: ent.Specifications,
			Image:          ent.Image,
		})
	}
	return raws, nil
}
