package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "roomcare/internal/errors"
	"roomcare/internal/model"
	"roomcare/internal/repository"
)

// UserService exposes profile operations on the authenticated user.
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdatePhone(ctx context.Context, id uuid.UUID, phone string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetUser fetches a user by ID.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdatePhone stores a new phone number and returns the updated user.
func (s *userService) UpdatePhone(ctx context.Context, id uuid.UUID, phone string) (*model.User, error) {
	if err := s.userRepo.UpdatePhone(ctx, id, phone); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("update phone: %w", err)
	}
	return s.GetUser(ctx, id)
}
