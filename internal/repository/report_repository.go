package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roomcare/internal/model"
)

// ReportFilter narrows a report listing. Empty fields are ignored.
type ReportFilter struct {
	Status     string
	RoomNumber string
}

// StatusCount is a per-status report count.
type StatusCount struct {
	Status model.ReportStatus `json:"status"`
	Count  int64              `json:"count"`
}

// MonthCount is a per-calendar-month report count.
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// RoomCount is a per-room report count.
type RoomCount struct {
	RoomNumber string `json:"room_number"`
	Count      int64  `json:"count"`
}

// FacilityCount is a per-facility report count.
type FacilityCount struct {
	Facility string `json:"facility"`
	Count    int64  `json:"count"`
}

// ReportRepository defines report persistence and aggregation operations.
type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error)
	List(ctx context.Context, filter ReportFilter) ([]model.Report, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReportStatus) (*model.Report, error)
	DeleteByRoomNumber(ctx context.Context, roomNumber string) error

	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountByMonth(ctx context.Context) ([]MonthCount, error)
	TopRooms(ctx context.Context, limit int) ([]RoomCount, error)
	TopFacilities(ctx context.Context, limit int) ([]FacilityCount, error)
	AverageResolutionDays(ctx context.Context) (*float64, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create creates a new report record.
func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// FindByID finds a report by ID.
func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var report model.Report
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// List returns reports matching the filter, newest first, with the
// reporter preloaded. A missing reporter leaves the field nil instead
// of failing the listing.
func (r *reportRepository) List(ctx context.Context, filter ReportFilter) ([]model.Report, error) {
	q := r.db.WithContext(ctx).Model(&model.Report{}).Preload("Reporter")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.RoomNumber != "" {
		q = q.Where("room_number = ?", filter.RoomNumber)
	}
	var reports []model.Report
	if err := q.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// UpdateStatus sets the status of a report, touching updated_at.
func (r *reportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReportStatus) (*model.Report, error) {
	var report model.Report
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&report).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// DeleteByRoomNumber removes all reports for the given room number.
func (r *reportRepository) DeleteByRoomNumber(ctx context.Context, roomNumber string) error {
	return r.db.WithContext(ctx).Where("room_number = ?", roomNumber).Delete(&model.Report{}).Error
}

// CountByStatus groups report counts by status.
func (r *reportRepository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).Model(&model.Report{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

// CountByMonth groups report counts by calendar month of creation,
// ascending by month.
func (r *reportRepository) CountByMonth(ctx context.Context) ([]MonthCount, error) {
	var counts []MonthCount
	err := r.db.WithContext(ctx).Model(&model.Report{}).
		Select("DATE_FORMAT(created_at, '%Y-%m') AS month, COUNT(*) AS count").
		Group("month").
		Order("month ASC").
		Scan(&counts).Error
	return counts, err
}

// TopRooms returns the rooms with the most reports, descending by count.
func (r *reportRepository) TopRooms(ctx context.Context, limit int) ([]RoomCount, error) {
	var counts []RoomCount
	err := r.db.WithContext(ctx).Model(&model.Report{}).
		Select("room_number, COUNT(*) AS count").
		Group("room_number").
		Order("count DESC").
		Limit(limit).
		Scan(&counts).Error
	return counts, err
}

// TopFacilities returns the facilities with the most reports, descending by count.
func (r *reportRepository) TopFacilities(ctx context.Context, limit int) ([]FacilityCount, error) {
	var counts []FacilityCount
	err := r.db.WithContext(ctx).Model(&model.Report{}).
		Select("facility, COUNT(*) AS count").
		Group("facility").
		Order("count DESC").
		Limit(limit).
		Scan(&counts).Error
	return counts, err
}

// AverageResolutionDays returns the average elapsed days between
// creation and the last status change, restricted to done reports.
// Returns nil when no done reports exist.
func (r *reportRepository) AverageResolutionDays(ctx context.Context) (*float64, error) {
	var avg sql.NullFloat64
	row := r.db.WithContext(ctx).Model(&model.Report{}).
		Where("status = ?", model.ReportStatusDone).
		Select("AVG(TIMESTAMPDIFF(SECOND, created_at, updated_at)) / 86400").
		Row()
	if err := row.Scan(&avg); err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	v := avg.Float64
	return &v, nil
}
