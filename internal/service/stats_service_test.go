package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"roomcare/internal/model"
	"roomcare/internal/repository"
)

func TestStatsService_StatusSummary(t *testing.T) {
	t.Run("statuses with no reports are zero-filled", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		reportRepo.On("CountByStatus", mock.Anything).Return([]repository.StatusCount{
			{Status: model.ReportStatusNew, Count: 3},
		}, nil)

		service := NewStatsService(reportRepo, nil)
		summary, err := service.StatusSummary(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(3), summary.New)
		assert.Equal(t, int64(0), summary.InProgress)
		assert.Equal(t, int64(0), summary.Done)
	})

	t.Run("all statuses populated", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		reportRepo.On("CountByStatus", mock.Anything).Return([]repository.StatusCount{
			{Status: model.ReportStatusNew, Count: 1},
			{Status: model.ReportStatusInProgress, Count: 2},
			{Status: model.ReportStatusDone, Count: 5},
		}, nil)

		service := NewStatsService(reportRepo, nil)
		summary, err := service.StatusSummary(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, &StatusSummary{New: 1, InProgress: 2, Done: 5}, summary)
	})
}

func TestStatsService_AdvancedStatistics(t *testing.T) {
	t.Run("average time is nil when nothing is done", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		reportRepo.On("CountByMonth", mock.Anything).Return([]repository.MonthCount{}, nil)
		reportRepo.On("TopRooms", mock.Anything, topEntryLimit).Return([]repository.RoomCount{}, nil)
		reportRepo.On("TopFacilities", mock.Anything, topEntryLimit).Return([]repository.FacilityCount{}, nil)
		reportRepo.On("AverageResolutionDays", mock.Anything).Return(nil, nil)

		service := NewStatsService(reportRepo, nil)
		stats, err := service.AdvancedStatistics(context.Background())

		assert.NoError(t, err)
		assert.Nil(t, stats.AvgTime)
		reportRepo.AssertExpectations(t)
	})

	t.Run("average time is rounded to two decimals", func(t *testing.T) {
		avg := 1.23456
		reportRepo := new(MockReportRepository)
		reportRepo.On("CountByMonth", mock.Anything).Return([]repository.MonthCount{
			{Month: "2026-07", Count: 4},
			{Month: "2026-08", Count: 9},
		}, nil)
		reportRepo.On("TopRooms", mock.Anything, topEntryLimit).Return([]repository.RoomCount{
			{RoomNumber: "101", Count: 7},
			{RoomNumber: "305", Count: 3},
		}, nil)
		reportRepo.On("TopFacilities", mock.Anything, topEntryLimit).Return([]repository.FacilityCount{
			{Facility: "shower", Count: 6},
		}, nil)
		reportRepo.On("AverageResolutionDays", mock.Anything).Return(&avg, nil)

		service := NewStatsService(reportRepo, nil)
		stats, err := service.AdvancedStatistics(context.Background())

		assert.NoError(t, err)
		assert.NotNil(t, stats.AvgTime)
		assert.Equal(t, 1.23, *stats.AvgTime)
		assert.Len(t, stats.MonthlyStats, 2)
		assert.Equal(t, "101", stats.TopRooms[0].RoomNumber)
		assert.Equal(t, "shower", stats.TopFacilities[0].Facility)
	})
}
