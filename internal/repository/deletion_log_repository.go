package repository

import (
	"context"

	"gorm.io/gorm"

	"roomcare/internal/model"
)

// DeletionLogRepository defines the append-only room deletion audit log.
// There are no update or delete operations on purpose.
type DeletionLogRepository interface {
	Create(ctx context.Context, entry *model.RoomDeletionLog) error
}

type deletionLogRepository struct {
	db *gorm.DB
}

// NewDeletionLogRepository creates a new deletion log repository.
func NewDeletionLogRepository(db *gorm.DB) DeletionLogRepository {
	return &deletionLogRepository{db: db}
}

// Create appends an audit entry.
func (r *deletionLogRepository) Create(ctx context.Context, entry *model.RoomDeletionLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
