package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/online-shopping/catalog-service/internal/service"
	pkgdto "github.com/online-shopping/catalog-service/pkg/dto"
	"github.com/online-shopping/catalog-service/pkg/errs"
	"github.com/online-shopping/catalog-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type CategoryController struct {
	service service.CategoryService
}

func CreateCategoryController(e *echo.Group, service service.CategoryService) {
	c := CategoryController{
		service: service,
	}
	e.GET("/:categoryName/products/", c.GetCategoryProducts)
	e.POST("/:categoryName/products/", c.AddCategory)
}

func (c *CategoryController) GetCategoryProducts(e echo.Context) error {
	filter := pkgdto.CategoryProductFilter{
		SortBy:    "inventory",
		SortOrder: "asc",
		PageNo:    1,
		PageSize:  10,
	}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCategoryProducts").Msg("")
	}

	if filter.PageNo < 1 {
		return response.WriteErrorResponse(e, fmt.Errorf("pageNo must be at least 1: %w", errs.ErrClient))
	}

	resp, err := c.service.GetCategoryProducts(e.Request().Context(), e.Param("categoryName"), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, resp)
}

func (c *CategoryController) AddCategory(e echo.Context) error {
	category, err := c.service.AddCategory(e.Request().Context(), e.Param("categoryName"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, category)
}
