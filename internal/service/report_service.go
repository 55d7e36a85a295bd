package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roomcare/internal/auth"
	"roomcare/internal/cache"
	apperrors "roomcare/internal/errors"
	"roomcare/internal/model"
	"roomcare/internal/repository"
)

// ReportService handles the report lifecycle: creation, scoped listing
// and status updates.
type ReportService interface {
	CreateReport(ctx context.Context, userID uuid.UUID, roomNumber, facility, description, imageURL string) (*model.Report, error)
	ListReports(ctx context.Context, claims *auth.Claims, status, roomNumber string) ([]model.Report, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReportStatus) (*model.Report, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
	roomRepo   repository.RoomRepository
	userRepo   repository.UserRepository
	cache      *cache.Client
}

// NewReportService creates a new report service.
func NewReportService(
	reportRepo repository.ReportRepository,
	roomRepo repository.RoomRepository,
	userRepo repository.UserRepository,
	cache *cache.Client,
) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		roomRepo:   roomRepo,
		userRepo:   userRepo,
		cache:      cache,
	}
}

// CreateReport files a report against an existing room. The report
// starts in the new status with created_at equal to updated_at.
func (s *reportService) CreateReport(ctx context.Context, userID uuid.UUID, roomNumber, facility, description, imageURL string) (*model.Report, error) {
	if _, err := s.roomRepo.FindByNumber(ctx, roomNumber); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("check room: %w", err)
	}

	report := &model.Report{
		UserID:      userID,
		RoomNumber:  roomNumber,
		Facility:    facility,
		Description: description,
		ImageURL:    imageURL,
		Status:      model.ReportStatusNew,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	_ = s.cache.DeleteMany(ctx, statsStatusCacheKey, statsAdvancedCacheKey)
	return report, nil
}

// ListReports returns reports visible to the caller, newest first.
// Admin callers may filter by any room; user callers are always scoped
// to their own room, no matter what room filter they pass. When the
// token predates room claims, the assignment is looked up from the
// user record; a caller whose room cannot be established sees nothing
// rather than everything.
func (s *reportService) ListReports(ctx context.Context, claims *auth.Claims, status, roomNumber string) ([]model.Report, error) {
	filter := repository.ReportFilter{Status: status}

	if claims.Role == model.RoleUser {
		own := claims.RoomNumber
		if own == "" {
			if user, err := s.userRepo.FindByID(ctx, claims.UserID); err == nil {
				own = user.RoomNumber
			}
		}
		if own == "" {
			return []model.Report{}, nil
		}
		filter.RoomNumber = own
	} else if roomNumber != "" {
		filter.RoomNumber = roomNumber
	}

	return s.reportRepo.List(ctx, filter)
}

// UpdateStatus sets a new status and touches updated_at. Transition
// legality is not checked: the workflow is new -> in-progress -> done,
// but any known status is accepted, including moving backwards.
func (s *reportService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReportStatus) (*model.Report, error) {
	report, err := s.reportRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("update report status: %w", err)
	}

	_ = s.cache.DeleteMany(ctx, statsStatusCacheKey, statsAdvancedCacheKey)
	return report, nil
}
