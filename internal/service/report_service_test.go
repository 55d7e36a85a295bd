package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"roomcare/internal/auth"
	apperrors "roomcare/internal/errors"
	"roomcare/internal/model"
	"roomcare/internal/repository"
)

func newReportService(reportRepo *MockReportRepository, roomRepo *MockRoomRepository, userRepo *MockUserRepository) ReportService {
	return NewReportService(reportRepo, roomRepo, userRepo, nil)
}

func TestReportService_CreateReport(t *testing.T) {
	userID := uuid.New()

	t.Run("new report starts in the new status", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		roomRepo := new(MockRoomRepository)
		userRepo := new(MockUserRepository)

		roomRepo.On("FindByNumber", mock.Anything, "101").Return(&model.Room{RoomNumber: "101"}, nil)
		reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Report")).Return(nil)

		service := newReportService(reportRepo, roomRepo, userRepo)
		report, err := service.CreateReport(context.Background(), userID, "101", "shower", "no hot water", "/uploads/abc.jpg")

		assert.NoError(t, err)
		assert.NotNil(t, report)
		assert.Equal(t, model.ReportStatusNew, report.Status)
		assert.Equal(t, userID, report.UserID)
		assert.Equal(t, "101", report.RoomNumber)
		assert.Equal(t, "shower", report.Facility)
		assert.Equal(t, "/uploads/abc.jpg", report.ImageURL)

		reportRepo.AssertExpectations(t)
		roomRepo.AssertExpectations(t)
	})

	t.Run("unknown room is rejected", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		roomRepo := new(MockRoomRepository)
		userRepo := new(MockUserRepository)

		roomRepo.On("FindByNumber", mock.Anything, "999").Return(nil, gorm.ErrRecordNotFound)

		service := newReportService(reportRepo, roomRepo, userRepo)
		report, err := service.CreateReport(context.Background(), userID, "999", "sink", "leaking", "")

		assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
		assert.Nil(t, report)
		reportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestReportService_ListReports_Scoping(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		claims      *auth.Claims
		roomFilter  string
		setupMock   func(*MockReportRepository, *MockUserRepository)
		expectEmpty bool
	}{
		{
			name:       "user is forced to own room regardless of filter",
			claims:     &auth.Claims{UserID: userID, Role: model.RoleUser, RoomNumber: "101"},
			roomFilter: "202",
			setupMock: func(r *MockReportRepository, u *MockUserRepository) {
				r.On("List", mock.Anything, repository.ReportFilter{RoomNumber: "101"}).Return([]model.Report{}, nil)
			},
		},
		{
			name:       "room claim missing falls back to the user record",
			claims:     &auth.Claims{UserID: userID, Role: model.RoleUser},
			roomFilter: "202",
			setupMock: func(r *MockReportRepository, u *MockUserRepository) {
				u.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, RoomNumber: "105"}, nil)
				r.On("List", mock.Anything, repository.ReportFilter{RoomNumber: "105"}).Return([]model.Report{}, nil)
			},
		},
		{
			name:   "user with no resolvable room sees nothing",
			claims: &auth.Claims{UserID: userID, Role: model.RoleUser},
			setupMock: func(r *MockReportRepository, u *MockUserRepository) {
				u.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectEmpty: true,
		},
		{
			name:       "admin room filter is honored as given",
			claims:     &auth.Claims{UserID: userID, Role: model.RoleAdmin},
			roomFilter: "202",
			setupMock: func(r *MockReportRepository, u *MockUserRepository) {
				r.On("List", mock.Anything, repository.ReportFilter{RoomNumber: "202"}).Return([]model.Report{}, nil)
			},
		},
		{
			name:   "admin without filter is unscoped",
			claims: &auth.Claims{UserID: userID, Role: model.RoleAdmin},
			setupMock: func(r *MockReportRepository, u *MockUserRepository) {
				r.On("List", mock.Anything, repository.ReportFilter{}).Return([]model.Report{{RoomNumber: "101"}, {RoomNumber: "202"}}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reportRepo := new(MockReportRepository)
			roomRepo := new(MockRoomRepository)
			userRepo := new(MockUserRepository)
			tt.setupMock(reportRepo, userRepo)

			service := newReportService(reportRepo, roomRepo, userRepo)
			reports, err := service.ListReports(context.Background(), tt.claims, "", tt.roomFilter)

			assert.NoError(t, err)
			if tt.expectEmpty {
				assert.Empty(t, reports)
				reportRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
			}

			reportRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestReportService_UpdateStatus(t *testing.T) {
	reportID := uuid.New()

	t.Run("backward transition is not rejected", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		roomRepo := new(MockRoomRepository)
		userRepo := new(MockUserRepository)

		created := time.Now().Add(-48 * time.Hour)
		reportRepo.On("UpdateStatus", mock.Anything, reportID, model.ReportStatusNew).Return(&model.Report{
			ID:        reportID,
			Status:    model.ReportStatusNew,
			CreatedAt: created,
			UpdatedAt: time.Now(),
		}, nil)

		service := newReportService(reportRepo, roomRepo, userRepo)

		// done -> new is outside the designed workflow but the contract
		// places no transition validation on it.
		report, err := service.UpdateStatus(context.Background(), reportID, model.ReportStatusNew)

		assert.NoError(t, err)
		assert.Equal(t, model.ReportStatusNew, report.Status)
		assert.True(t, report.UpdatedAt.After(report.CreatedAt))
		reportRepo.AssertExpectations(t)
	})

	t.Run("missing report", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		roomRepo := new(MockRoomRepository)
		userRepo := new(MockUserRepository)

		reportRepo.On("UpdateStatus", mock.Anything, reportID, model.ReportStatusDone).Return(nil, gorm.ErrRecordNotFound)

		service := newReportService(reportRepo, roomRepo, userRepo)
		report, err := service.UpdateStatus(context.Background(), reportID, model.ReportStatusDone)

		assert.ErrorIs(t, err, apperrors.ErrReportNotFound)
		assert.Nil(t, report)
	})
}
