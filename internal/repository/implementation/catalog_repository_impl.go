// FILE: internal/repository/implementation/catalog_repository_impl.go
// Implementation of CatalogRepository
package implementation

import (
	"context"

	"ai-shopassist-be/internal/entity"
	"ai-shopassist-be/internal/mapper"
	"ai-shopassist-be/internal/model"
	"ai-shopassist-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewCatalogRepository(db *gorm.DB) contract.CatalogRepository {
	return &CatalogRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *CatalogRepositoryImpl) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CatalogRepositoryImpl) FindByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	var models []*model.Product
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CatalogRepositoryImpl) UpsertMany(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	models := make([]*model.Product, 0, len(products))
	for _, p := range products {
		if p.Id == uuid.Nil {
			p.Id = uuid.New()
		}
		models = append(models, r.mapper.ToModel(p))
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"brand", "price", "specifications", "image", "updated_at"}),
		}).
		Create(&models).Error
}

func (r *CatalogRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	return count, err
}
