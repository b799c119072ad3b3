package dto

import "github.com/online-shopping/catalog-service/internal/domain"

type ProductRequest struct {
	Name        string             `json:"name"`
	Brand       string             `json:"brand"`
	Description string             `json:"description"`
	Price       domain.Price       `json:"price"`
	Inventory   domain.Inventory   `json:"inventory"`
	Attributes  []domain.Attribute `json:"attributes"`
	Category    CategoryRequest    `json:"category"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}
