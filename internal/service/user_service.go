package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/online-shopping/catalog-service/internal/domain"
	"github.com/online-shopping/catalog-service/internal/dto"
	"github.com/online-shopping/catalog-service/internal/repository"
	"github.com/online-shopping/catalog-service/pkg/errs"
)

const (
	userIDLength = 15

	UserSavedSuccessfully = "USER SAVED SUCCESSFULLY"
)

type UserServiceImpl struct {
	userRepo repository.UserRepository
	idGen    IDGenerator
}

func CreateUserService(userRepo repository.UserRepository, idGen IDGenerator) UserService {
	return &UserServiceImpl{userRepo: userRepo, idGen: idGen}
}

func (s *UserServiceImpl) AddUser(ctx context.Context, data dto.UserRequest) (message string, err error) {
	if strings.TrimSpace(data.Name) == "" {
		return "", fmt.Errorf("name should not be blank or empty: %w", errs.ErrClient)
	}
	if strings.TrimSpace(data.Password) == "" {
		return "", fmt.Errorf("password must not be blank or empty: %w", errs.ErrClient)
	}

	id := s.idGen.Generate(userIDLength)

	_, err = s.userRepo.GetUserByID(ctx, id)
	if err == nil {
		return "", fmt.Errorf("user %s is already available in database: %w", data.Name, errs.ErrConflict)
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return "", err
	}

	user := domain.User{
		ID:       id,
		Name:     data.Name,
		Email:    data.Email,
		Password: data.Password,
		Roles:    data.Roles,
	}

	err = s.userRepo.AddUser(ctx, user)
	if err != nil {
		return "", err
	}

	return UserSavedSuccessfully, nil
}

func (s *UserServiceImpl) GetUsers(ctx context.Context) (users []domain.User, err error) {
	users, err = s.userRepo.GetUsers(ctx)
	if err != nil {
		return
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("users are not available in database: %w", errs.ErrNotFound)
	}

	return users, nil
}
