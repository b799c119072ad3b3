package service

import (
	"context"

	"github.com/online-shopping/catalog-service/internal/domain"
	"github.com/online-shopping/catalog-service/internal/dto"
	pkgdto "github.com/online-shopping/catalog-service/pkg/dto"
)

// IDGenerator produces fixed-length record ids. Injected so tests can force
// collisions.
type IDGenerator interface {
	Generate(length int) string
}

// EventPublisher pushes catalog change events to the message queue.
type EventPublisher interface {
	Publish(msg []byte) error
}

type CategoryService interface {
	GetCategoryProducts(ctx context.Context, categoryName string, filter pkgdto.CategoryProductFilter) (resp dto.CategoryProductsResponse, err error)
	AddCategory(ctx context.Context, categoryName string) (category domain.Category, err error)
}

type ProductService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, id string, data dto.ProductRequest) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	GetProductsByCategory(ctx context.Context, category string) (products []domain.Product, err error)
	GetProducts(ctx context.Context, filter pkgdto.ProductFilter) (products []domain.Product, err error)
}

type UserService interface {
	AddUser(ctx context.Context, data dto.UserRequest) (message string, err error)
	GetUsers(ctx context.Context) (users []domain.User, err error)
}
