// FILE: internal/dto/catalog_dto.go
package dto

// Catalog API DTOs

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type ProductDTO struct {
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
	Image    string   `json:"image"`
	Category string   `json:"category"`
}

type ProductsResponse struct {
	Category string       `json:"category"`
	Products []ProductDTO `json:"products"`
}
