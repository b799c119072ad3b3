package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/online-shopping/catalog-service/internal/domain"
	"github.com/online-shopping/catalog-service/internal/dto"
	"github.com/online-shopping/catalog-service/internal/repository"
	pkgdto "github.com/online-shopping/catalog-service/pkg/dto"
	"github.com/online-shopping/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

const categoryIDLength = 10

type CategoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	idGen        IDGenerator
}

func CreateCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, idGen IDGenerator) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo, productRepo: productRepo, idGen: idGen}
}

// GetCategoryProducts returns the category page: products of the category,
// sorted by inventory or price, stripped of anything not sellable, and cut
// down to the requested page. Everything after the two fetches is in-memory
// post-processing.
func (s *CategoryServiceImpl) GetCategoryProducts(ctx context.Context, categoryName string, filter pkgdto.CategoryProductFilter) (resp dto.CategoryProductsResponse, err error) {
	category, err := s.categoryRepo.GetCategoryByName(ctx, categoryName)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return resp, fmt.Errorf("category %s is not available in database: %w", categoryName, errs.ErrNotFound)
		}
		return
	}

	products, err := s.productRepo.GetProductsByCategory(ctx, categoryName)
	if err != nil {
		return
	}

	// An empty fetch for an existing category is treated as a backend
	// problem, not an empty catalog.
	if len(products) == 0 {
		log.Ctx(ctx).Debug().Str("category", categoryName).Msg("product fetch returned no documents")
		return resp, errs.ErrProductsUnavailable
	}

	sortProducts(products, filter.SortBy, filter.SortOrder)

	available := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Inventory.Available > p.Inventory.Reserved {
			available = append(available, p)
		}
	}

	resp.Products = paginate(available, filter.PageNo, filter.PageSize)
	resp.Category = dto.CategoryResponse{
		ID:           category.ID,
		CategoryName: categoryName,
	}

	return resp, nil
}

// sortProducts applies a single sort key, ascending by default. Descending
// order takes effect only when sortOrder and sortBy both match; any other
// sortBy value leaves the list in storage order.
func sortProducts(products []domain.Product, sortBy, sortOrder string) {
	if strings.EqualFold(sortBy, "inventory") {
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Inventory.Available < products[j].Inventory.Available
		})
	} else if strings.EqualFold(sortBy, "price") {
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Amount < products[j].Price.Amount
		})
	}

	if strings.EqualFold(sortOrder, "desc") && strings.EqualFold(sortBy, "inventory") {
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Inventory.Available > products[j].Inventory.Available
		})
	}
	if strings.EqualFold(sortOrder, "desc") && strings.EqualFold(sortBy, "price") {
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Amount > products[j].Price.Amount
		})
	}
}

// paginate slices a one-based page out of the list. A page past the end is
// an empty page, not an error.
func paginate(products []domain.Product, pageNo, pageSize int) []domain.Product {
	start := (pageNo - 1) * pageSize
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	if start >= end {
		return []domain.Product{}
	}

	return products[start:end]
}

func (s *CategoryServiceImpl) AddCategory(ctx context.Context, categoryName string) (category domain.Category, err error) {
	if strings.TrimSpace(categoryName) == "" {
		return category, fmt.Errorf("category name should not be blank or empty: %w", errs.ErrClient)
	}

	_, err = s.categoryRepo.GetCategoryByName(ctx, categoryName)
	if err == nil {
		return category, fmt.Errorf("category %s is already available in database: %w", categoryName, errs.ErrConflict)
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return
	}

	category = domain.Category{
		ID:   s.idGen.Generate(categoryIDLength),
		Name: categoryName,
	}

	err = s.categoryRepo.AddCategory(ctx, category)
	if err != nil {
		return category, err
	}

	return category, nil
}
