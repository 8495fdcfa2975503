// FILE: internal/entity/product_entity.go
// Domain entity for catalog items
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a purchasable catalog item. Price stays in its raw stored form
// ("1299", "$1299" or "N/A"); display normalization happens downstream.
type Product struct {
	Id             uuid.UUID
	Name           string
	Category       string
	Brand          string
	Price          string
	Specifications []string
	Image          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
