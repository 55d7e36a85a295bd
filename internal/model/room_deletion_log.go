package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomDeletionLog is an append-only audit record of room deletions.
// It outlives the room it refers to and is never updated or deleted.
type RoomDeletionLog struct {
	ID                uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	RoomID            uuid.UUID `json:"room_id" gorm:"type:char(36);not null;index"`
	RoomNumber        string    `json:"room_number" gorm:"size:20;not null;index"`
	DeletedBy         uuid.UUID `json:"deleted_by" gorm:"type:char(36);not null"`
	DeletedByUsername string    `json:"deleted_by_username" gorm:"size:100"`
	Reason            string    `json:"reason" gorm:"type:text"`
	Force             bool      `json:"force" gorm:"default:false"`
	CreatedAt         time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (l *RoomDeletionLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
