// internal/services/user_service.go
package services

import (
	"context"
	"time"

	"donation-backend/internal/models"
	"donation-backend/internal/repository"
	apperrors "donation-backend/pkg/errors"
)

type UserService interface {
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	user := req.ToUser(time.Now())
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := parseObjectID("user", id)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, oid)
}

func (s *userService) Update(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	oid, err := parseObjectID("user", id)
	if err != nil {
		return nil, err
	}

	update := req.Updates()
	update["updatedAt"] = time.Now()

	return s.userRepo.Update(ctx, oid, update)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID("user", id)
	if err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, oid)
}
