package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/online-shopping/catalog-service/internal/dto"
	"github.com/online-shopping/catalog-service/internal/service"
	pkgdto "github.com/online-shopping/catalog-service/pkg/dto"
	"github.com/online-shopping/catalog-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	c := ProductController{
		service: service,
	}
	e.POST("/admin/products", c.AddProduct)
	e.PUT("/admin/products/:id", c.UpdateProduct)
	e.DELETE("/admin/products/:id", c.DeleteProduct)
	e.GET("/categories/:category/products", c.GetProductsByCategory)
	e.GET("/products/:id", c.GetProductByID)
	e.GET("/products", c.GetProducts)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	product, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusCreated, product)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	id := e.Param("id")
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	product, err := c.service.UpdateProduct(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, product)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	id := e.Param("id")
	err := c.service.DeleteProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.String(http.StatusOK, "Product deleted successfully!.")
}

func (c *ProductController) GetProductsByCategory(e echo.Context) error {
	products, err := c.service.GetProductsByCategory(e.Request().Context(), e.Param("category"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, products)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	product, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, product)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	// Zero-based paging here, unlike the category page endpoint.
	filter := pkgdto.ProductFilter{
		SortBy:    "name",
		SortOrder: "asc",
		PageNo:    0,
		PageSize:  10,
	}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	products, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, products)
}
