package service

import (
	"context"
	"testing"

	"github.com/online-shopping/catalog-service/internal/domain"
	pkgdto "github.com/online-shopping/catalog-service/pkg/dto"
	"github.com/online-shopping/catalog-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func electronicsProduct(id string, available, reserved int, price float64) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        "product-" + id,
		Brand:       "acme",
		Description: "test product",
		Price:       domain.Price{Currency: "USD", Amount: price},
		Inventory:   domain.Inventory{Total: available + reserved, Available: available, Reserved: reserved},
		Attributes:  []domain.Attribute{{Name: "color", Value: "black"}},
		Category:    domain.Category{Name: "electronics"},
	}
}

func defaultFilter() pkgdto.CategoryProductFilter {
	return pkgdto.CategoryProductFilter{SortBy: "inventory", SortOrder: "asc", PageNo: 1, PageSize: 10}
}

func newCategoryServiceWithProducts(t *testing.T, products []domain.Product) CategoryService {
	t.Helper()

	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	categoryRepo.On("GetCategoryByName", mock.Anything, "electronics").Return(domain.Category{ID: "CAT1234567", Name: "electronics"}, nil)
	productRepo.On("GetProductsByCategory", mock.Anything, "electronics").Return(products, nil)

	return CreateCategoryService(categoryRepo, productRepo, &stubIDGenerator{ids: []string{"CAT1234567"}})
}

func TestGetCategoryProducts_SortByInventoryAscending(t *testing.T) {
	svc := newCategoryServiceWithProducts(t, []domain.Product{
		electronicsProduct("P3", 30, 0, 5),
		electronicsProduct("P1", 10, 0, 15),
		electronicsProduct("P2", 20, 0, 10),
	})

	resp, err := svc.GetCategoryProducts(context.Background(), "electronics", defaultFilter())
	require.NoError(t, err)

	require.Len(t, resp.Products, 3)
	for i := 1; i < len(resp.Products); i++ {
		assert.LessOrEqual(t, resp.Products[i-1].Inventory.Available, resp.Products[i].Inventory.Available)
	}
	assert.Equal(t, "CAT1234567", resp.Category.ID)
	assert.Equal(t, "electronics", resp.Category.CategoryName)
}

func TestGetCategoryProducts_SortByInventoryDescending(t *testing.T) {
	svc := newCategoryServiceWithProducts(t, []domain.Product{
		electronicsProduct("P1", 10, 0, 15),
		electronicsProduct("P3", 30, 0, 5),
		electronicsProduct("P2", 20, 0, 10),
	})

	filter := defaultFilter()
	filter.SortOrder = "desc"

	resp, err := svc.GetCategoryProducts(context.Background(), "electronics", filter)
	require.NoError(t, err)

	require.Len(t, resp.Products, 3)
	assert.Equal(t, []string{"P3", "P2", "P1"}, productIDs(resp.Products))
}

func TestGetCategoryProducts_SortByPriceDescending(t *testing.T) {
	svc := newCategoryServiceWithProducts(t, []domain.Product{
		electronicsProduct("P1", 10, 0, 15),
		electronicsProduct("P3", 30, 0, 5),
		electronicsProduct("P2", 20, 0, 10),
	})

	filter := defaultFilter()
	filter.SortBy = "price"
	filter.SortOrder = "desc"

	resp, err := svc.GetCategoryProducts(context.Background(), "electronics", filter)
	require.NoError(t, err)

	require.Len(t, resp.Products, 3)
	for i := 1; i < len(resp.Products); i++ {
		assert.GreaterOrEqual(t, resp.Products[i-1].Price.Amount, resp.Products[i].Price.Amount)
	}
}

func TestGetCategoryProducts_UnknownSortKeyKeepsStorageOrder(t *testing.T) {
	svc := newCategoryServiceWithProducts(t, []domain.Product{
		electronicsProduct("P3", 30, 0, 5),
		electronicsProduct("P1", 10, 0, 15),
		electronicsProduct("P2", 20, 0, 10),
	})

	filter := defaultFilter()
	filter.SortBy = "name"

	resp, err := svc.GetCategoryProducts(context.Background(), "electronics", filter)
	require.NoError(t, err)

	assert.Equal(t, []string{"P3", "P1", "P2"}, productIDs(resp.Products))
}

func TestGetCategoryProducts_FiltersOutUnsellableProducts(t *testing.T) {
	svc := newCategoryServiceWithProducts(t, []domain.Product{
		electronicsProduct("P1", 20, 5, 10),  // sellable
		electronicsProduct("P2", 35, 30, 10), // sellable, 35 > 30
		electronicsProduct("P3", 10, 10, 10), // equality excludes
		electronicsProduct("P4", 5, 8, 10),   // reserved exceeds available
	})

	resp, err := svc.GetCategoryProducts(context.Background(), "electronics", defaultFilter())
	require.NoError(t, err)

	assert.Equal(t, []string{"P1", "P2"}, productIDs(resp.Products))
}

func TestGetCategoryProducts_Pagination(t *testing.T) {
	products := []domain.Product{
		electronicsProduct("P1", 10, 0, 1),
		electronicsProduct("P2", 20, 0, 2),
		electronicsProduct("P3", 30, 0, 3),
		electronicsProduct("P4", 40, 0, 4),
		electronicsProduct("P5", 50, 0, 5),
	}

	svc := newCategoryServiceWithProducts(t, products)

	filter := defaultFilter()
	filter.PageSize = 2

	var collected []string
	for pageNo := 1; pageNo <= 3; pageNo++ {
		filter.PageNo = pageNo
		resp, err := svc.GetCategoryProducts(context.Background(), "electronics", filter)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(resp.Products), filter.PageSize)
		collected = append(collected, productIDs(resp.Products)...)
	}

	// Concatenation of all pages equals the full sorted list
	assert.Equal(t, []string{"P1", "P2", "P3", "P4", "P5"}, collected)

	// A page past the end is an empty page, not an error
	filter.PageNo = 4
	resp, err := svc.GetCategoryProducts(context.Background(), "electronics", filter)
	require.NoError(t, err)
	assert.Empty(t, resp.Products)
}

func TestGetCategoryProducts_CategoryNotFound(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	categoryRepo.On("GetCategoryByName", mock.Anything, "garden").Return(domain.Category{}, errs.ErrNotFound)

	svc := CreateCategoryService(categoryRepo, productRepo, &stubIDGenerator{ids: []string{"CAT1234567"}})

	_, err := svc.GetCategoryProducts(context.Background(), "garden", defaultFilter())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	productRepo.AssertNotCalled(t, "GetProductsByCategory")
}

func TestGetCategoryProducts_EmptyFetchIsUnavailable(t *testing.T) {
	svc := newCategoryServiceWithProducts(t, []domain.Product{})

	_, err := svc.GetCategoryProducts(context.Background(), "electronics", defaultFilter())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrProductsUnavailable)
}

func TestAddCategory(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	categoryRepo.On("GetCategoryByName", mock.Anything, "books").Return(domain.Category{}, errs.ErrNotFound)
	categoryRepo.On("AddCategory", mock.Anything, domain.Category{ID: "CAT1234567", Name: "books"}).Return(nil)

	svc := CreateCategoryService(categoryRepo, productRepo, &stubIDGenerator{ids: []string{"CAT1234567"}})

	category, err := svc.AddCategory(context.Background(), "books")
	require.NoError(t, err)
	assert.Equal(t, "books", category.Name)
	assert.Equal(t, "CAT1234567", category.ID)
	categoryRepo.AssertExpectations(t)
}

func TestAddCategory_AlreadyExists(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	categoryRepo.On("GetCategoryByName", mock.Anything, "books").Return(domain.Category{ID: "CAT0000001", Name: "books"}, nil)

	svc := CreateCategoryService(categoryRepo, productRepo, &stubIDGenerator{ids: []string{"CAT1234567"}})

	_, err := svc.AddCategory(context.Background(), "books")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	categoryRepo.AssertNotCalled(t, "AddCategory")
}

func TestAddCategory_BlankName(t *testing.T) {
	svc := CreateCategoryService(new(MockCategoryRepository), new(MockProductRepository), &stubIDGenerator{ids: []string{"CAT1234567"}})

	_, err := svc.AddCategory(context.Background(), "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrClient)
}

func productIDs(products []domain.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
