package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/online-shopping/catalog-service/internal/dto"
	"github.com/online-shopping/catalog-service/internal/service"
	"github.com/online-shopping/catalog-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService) {
	c := UserController{
		service: service,
	}
	e.POST("/users", c.AddUser)
	e.GET("/users", c.GetUsers)
}

func (c *UserController) AddUser(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
	}

	message, err := c.service.AddUser(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteDataResponse(e, http.StatusCreated, message, message)
}

func (c *UserController) GetUsers(e echo.Context) error {
	users, err := c.service.GetUsers(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, users)
}
