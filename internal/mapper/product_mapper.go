// FILE: internal/mapper/product_mapper.go
// Mapper for Product entity <-> model conversion
package mapper

import (
	"encoding/json"

	"ai-shopassist-be/internal/entity"
	"ai-shopassist-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(mdl *model.Product) *entity.Product {
	if mdl == nil {
		return nil
	}
	var specs []string
	if len(mdl.Specifications) > 0 {
		// A corrupt row degrades to no specifications rather than failing
		// the whole catalog fetch.
		_ = json.Unmarshal(mdl.Specifications, &specs)
	}
	return &entity.Product{
		Id:             mdl.Id,
		Name:           mdl.Name,
		Category:       mdl.Category,
		Brand:          mdl.Brand,
		Price:          mdl.Price,
		Specifications: specs,
		Image:          mdl.Image,
		CreatedAt:      mdl.CreatedAt,
		UpdatedAt:      mdl.UpdatedAt,
	}
}

func (m *ProductMapper) ToModel(ent *entity.Product) *model.Product {
	if ent == nil {
		return nil
	}
	specs, _ := json.Marshal(ent.Specifications)
	return &model.Product{
		Id:             ent.Id,
		Name:           ent.Name,
		Category:       ent.Category,
		Brand:          ent.Brand,
		Price:          ent.Price,
		Specifications: specs,
		Image:          ent.Image,
		CreatedAt:      ent.CreatedAt,
		UpdatedAt:      ent.UpdatedAt,
	}
}

func (m *ProductMapper) ToEntities(models []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
