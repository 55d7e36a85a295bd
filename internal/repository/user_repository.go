package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roomcare/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	UpdatePhone(ctx context.Context, id uuid.UUID, phone string) error
	CountByRoomNumber(ctx context.Context, roomNumber string) (int64, error)
	ClearRoomNumber(ctx context.Context, roomNumber string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePhone updates the phone number of a user.
func (r *userRepository) UpdatePhone(ctx context.Context, id uuid.UUID, phone string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("phone", phone)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByRoomNumber counts users assigned to the given room number.
func (r *userRepository) CountByRoomNumber(ctx context.Context, roomNumber string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("room_number = ?", roomNumber).
		Count(&count).Error
	return count, err
}

// ClearRoomNumber unsets the room reference on all users assigned to the
// given room number. Accounts themselves are preserved.
func (r *userRepository) ClearRoomNumber(ctx context.Context, roomNumber string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("room_number = ?", roomNumber).
		Update("room_number", "").Error
}
