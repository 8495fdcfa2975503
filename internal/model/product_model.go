// FILE: internal/model/product_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Product is the persistence shape of a catalog item. Specifications holds
// the ordered free-text spec lines as a JSON array; order is meaningful for
// short summaries.
type Product struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"not null;uniqueIndex:idx_products_category_name"`
	Category       string    `gorm:"not null;uniqueIndex:idx_products_category_name;index"`
	Brand          string
	Price          string
	Specifications datatypes.JSON
	Image          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Product) TableName() string {
	return "products"
}
