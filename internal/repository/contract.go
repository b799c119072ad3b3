package repository

import (
	"context"

	"github.com/online-shopping/catalog-service/internal/domain"
	pkgdto "github.com/online-shopping/catalog-service/pkg/dto"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	GetProductsByCategory(ctx context.Context, categoryName string) (data []domain.Product, err error)
	GetProducts(ctx context.Context, filter pkgdto.ProductFilter) (data []domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type CategoryRepository interface {
	GetCategoryByName(ctx context.Context, name string) (category domain.Category, err error)
	AddCategory(ctx context.Context, data domain.Category) (err error)
}

type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (user domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (err error)
	GetUsers(ctx context.Context) (data []domain.User, err error)
}
