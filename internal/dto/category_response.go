package dto

import "github.com/online-shopping/catalog-service/internal/domain"

// CategoryResponse exposes the category id, which the entity itself keeps
// out of serialization.
type CategoryResponse struct {
	ID           string `json:"id"`
	CategoryName string `json:"category_name"`
}

type CategoryProductsResponse struct {
	Category CategoryResponse `json:"category"`
	Products []domain.Product `json:"products"`
}
