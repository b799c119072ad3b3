package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/online-shopping/catalog-service/internal/domain"
	"github.com/online-shopping/catalog-service/internal/dto"
	"github.com/online-shopping/catalog-service/internal/repository"
	pkgdto "github.com/online-shopping/catalog-service/pkg/dto"
	"github.com/online-shopping/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

const productIDLength = 10

type ProductServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	idGen        IDGenerator
	publisher    EventPublisher
}

func CreateProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, idGen IDGenerator, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{productRepo: productRepo, categoryRepo: categoryRepo, idGen: idGen, publisher: publisher}
}

func validateProductRequest(data dto.ProductRequest) error {
	if strings.TrimSpace(data.Name) == "" {
		return fmt.Errorf("name is mandatory and should not be blank or empty: %w", errs.ErrClient)
	}
	if strings.TrimSpace(data.Brand) == "" {
		return fmt.Errorf("brand is mandatory and should not be blank or empty: %w", errs.ErrClient)
	}
	if strings.TrimSpace(data.Description) == "" {
		return fmt.Errorf("description is mandatory and should not be blank or empty: %w", errs.ErrClient)
	}
	if strings.TrimSpace(data.Category.Name) == "" {
		return fmt.Errorf("category name is mandatory and should not be blank or empty: %w", errs.ErrClient)
	}
	if strings.TrimSpace(data.Price.Currency) == "" {
		return fmt.Errorf("currency type is required, please enter currency like USD or INR: %w", errs.ErrClient)
	}
	if data.Price.Amount < 1.00 {
		return fmt.Errorf("price must be greater than or equal to 1.00: %w", errs.ErrClient)
	}
	if len(data.Attributes) == 0 {
		return fmt.Errorf("attributes are the specifications and should not be empty: %w", errs.ErrClient)
	}

	return nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error) {
	if err = validateProductRequest(data); err != nil {
		return
	}

	id := s.idGen.Generate(productIDLength)

	// Defensive collision check; a fresh random id is effectively always
	// absent.
	_, err = s.productRepo.GetProductByID(ctx, id)
	if err == nil {
		return product, fmt.Errorf("product already exists with given id %s: %w", id, errs.ErrConflict)
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return
	}

	category, err := s.ensureCategory(ctx, data.Category.Name)
	if err != nil {
		return
	}

	product = domain.Product{
		ID:          id,
		Name:        data.Name,
		Brand:       data.Brand,
		Description: data.Description,
		Price:       data.Price,
		Inventory:   data.Inventory,
		Attributes:  data.Attributes,
		Category:    category,
	}

	err = s.productRepo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	publishEvent(s.publisher, "add_product", product)

	return product, nil
}

// ensureCategory upserts the embedded category by name: create it with a
// fresh id when missing, leave an existing record untouched. Losing the
// insert race to a concurrent request is fine, the record exists either way.
func (s *ProductServiceImpl) ensureCategory(ctx context.Context, name string) (category domain.Category, err error) {
	category, err = s.categoryRepo.GetCategoryByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return
	}

	category = domain.Category{
		ID:   s.idGen.Generate(categoryIDLength),
		Name: name,
	}

	err = s.categoryRepo.AddCategory(ctx, category)
	if errors.Is(err, errs.ErrConflict) {
		log.Ctx(ctx).Debug().Str("category", name).Msg("lost category insert race, record already exists")
		return s.categoryRepo.GetCategoryByName(ctx, name)
	}
	if err != nil {
		return
	}

	return category, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, id string, data dto.ProductRequest) (product domain.Product, err error) {
	if err = validateProductRequest(data); err != nil {
		return
	}

	_, err = s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return product, fmt.Errorf("product not found for this id %s: %w", id, errs.ErrNotFound)
		}
		return
	}

	product = domain.Product{
		ID:          id,
		Name:        data.Name,
		Brand:       data.Brand,
		Description: data.Description,
		Price:       data.Price,
		Inventory:   data.Inventory,
		Attributes:  data.Attributes,
		Category: domain.Category{
			Name: data.Category.Name,
		},
	}

	err = s.productRepo.UpdateProduct(ctx, product)
	if err != nil {
		return
	}

	publishEvent(s.publisher, "update_product", product)

	return product, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	_, err = s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return fmt.Errorf("product does not exist with given id %s: %w", id, errs.ErrNotFound)
		}
		return
	}

	err = s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return
	}

	publishEvent(s.publisher, "delete_product", domain.Product{ID: id})

	return
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	product, err = s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return product, fmt.Errorf("product not found for this id %s: %w", id, errs.ErrNotFound)
		}
		return
	}

	return product, nil
}

func (s *ProductServiceImpl) GetProductsByCategory(ctx context.Context, category string) (products []domain.Product, err error) {
	products, err = s.productRepo.GetProductsByCategory(ctx, category)
	if err != nil {
		return
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("product of %s category is not available in database: %w", category, errs.ErrNotFound)
	}

	return products, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.ProductFilter) (products []domain.Product, err error) {
	products, err = s.productRepo.GetProducts(ctx, filter)
	if err != nil {
		return
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("product is not available in database: %w", errs.ErrNotFound)
	}

	return products, nil
}
