package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/online-shopping/catalog-service/internal/domain"
	"github.com/online-shopping/catalog-service/internal/dto"
	appmiddleware "github.com/online-shopping/catalog-service/internal/middleware"
	"github.com/online-shopping/catalog-service/pkg/errs"
	"github.com/online-shopping/catalog-service/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserService struct {
	message string
	users   []domain.User
	err     error
}

func (s *stubUserService) AddUser(ctx context.Context, data dto.UserRequest) (string, error) {
	return s.message, s.err
}

func (s *stubUserService) GetUsers(ctx context.Context) ([]domain.User, error) {
	return s.users, s.err
}

func newUserServer(svc *stubUserService) *echo.Echo {
	e := echo.New()
	e.Use(appmiddleware.Logger)
	CreateUserController(e.Group("/v1/api"), svc)
	return e
}

func TestAddUser_CreatedEnvelope(t *testing.T) {
	svc := &stubUserService{message: "USER SAVED SUCCESSFULLY"}
	e := newUserServer(svc)

	body := strings.NewReader(`{"name":"alice","email":"alice@example.com","password":"secret","roles":"customer"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/api/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope response.DataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "USER SAVED SUCCESSFULLY", envelope.Header.Message)
	assert.Equal(t, "201", envelope.Header.Code)
	assert.NotEmpty(t, envelope.Header.TraceID)
	assert.Empty(t, envelope.Errors)
}

func TestGetUsers_EmptyStore(t *testing.T) {
	svc := &stubUserService{err: fmt.Errorf("users are not available in database: %w", errs.ErrNotFound)}
	e := newUserServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/api/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope response.DataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Header.TraceID)
	require.Len(t, envelope.Errors, 1)
}

func TestGetUsers(t *testing.T) {
	svc := &stubUserService{users: []domain.User{{ID: "USER00000000001", Name: "alice"}}}
	e := newUserServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/api/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var users []domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Name)
}
