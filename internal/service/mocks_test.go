package service

import (
	"context"

	"github.com/online-shopping/catalog-service/internal/domain"
	pkgdto "github.com/online-shopping/catalog-service/pkg/dto"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) AddProduct(ctx context.Context, data domain.Product) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) GetProductsByCategory(ctx context.Context, categoryName string) ([]domain.Product, error) {
	args := m.Called(ctx, categoryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) GetProducts(ctx context.Context, filter pkgdto.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetCategoryByName(ctx context.Context, name string) (domain.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) AddCategory(ctx context.Context, data domain.Category) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) AddUser(ctx context.Context, data domain.User) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockUserRepository) GetUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// stubIDGenerator returns a fixed sequence of ids, cycling the last one.
type stubIDGenerator struct {
	ids  []string
	next int
}

func (g *stubIDGenerator) Generate(length int) string {
	if g.next >= len(g.ids) {
		return g.ids[len(g.ids)-1]
	}
	id := g.ids[g.next]
	g.next++
	return id
}

// nopPublisher swallows events so unit tests run without a broker.
type nopPublisher struct{}

func (nopPublisher) Publish(msg []byte) error {
	return nil
}
