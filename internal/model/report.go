package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportStatus represents the workflow status of a maintenance report.
type ReportStatus string

const (
	ReportStatusNew        ReportStatus = "new"
	ReportStatusInProgress ReportStatus = "in-progress"
	ReportStatusDone       ReportStatus = "done"
)

// ValidReportStatus reports whether s is one of the known statuses.
func ValidReportStatus(s ReportStatus) bool {
	switch s {
	case ReportStatusNew, ReportStatusInProgress, ReportStatusDone:
		return true
	}
	return false
}

// Report represents a maintenance request for a room. RoomNumber is
// denormalized on purpose: a report stays queryable by room even when
// the reporting user moves or is unassigned.
type Report struct {
	ID          uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID    `json:"user_id" gorm:"type:char(36);not null;index"`
	RoomNumber  string       `json:"room_number" gorm:"size:20;not null;index"`
	Facility    string       `json:"facility" gorm:"size:100;index"`
	Description string       `json:"description" gorm:"type:text"`
	ImageURL    string       `json:"image_url,omitempty" gorm:"size:255"`
	Status      ReportStatus `json:"status" gorm:"type:varchar(20);not null;default:'new';index"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Reporter is resolved on listing; nil when the user record is gone.
	Reporter *User `json:"reporter,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
