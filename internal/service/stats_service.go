package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"roomcare/internal/cache"
	"roomcare/internal/model"
	"roomcare/internal/repository"
)

const (
	statsCacheTTL         = 1 * time.Minute
	statsStatusCacheKey   = "stats:status"
	statsAdvancedCacheKey = "stats:advanced"
)

const topEntryLimit = 5

// StatusSummary is the per-status report count, zero-filled for
// statuses with no reports.
type StatusSummary struct {
	New        int64 `json:"new"`
	InProgress int64 `json:"in-progress"`
	Done       int64 `json:"done"`
}

// AdvancedStatistics bundles the derived report views for the admin
// dashboard. AvgTime is the average days from creation to completion
// over done reports, nil when none exist.
type AdvancedStatistics struct {
	MonthlyStats  []repository.MonthCount    `json:"monthlyStats"`
	TopRooms      []repository.RoomCount     `json:"topRooms"`
	TopFacilities []repository.FacilityCount `json:"topFacilities"`
	AvgTime       *float64                   `json:"avgTime"`
}

// StatsService computes read-only aggregates over report history.
type StatsService interface {
	StatusSummary(ctx context.Context) (*StatusSummary, error)
	AdvancedStatistics(ctx context.Context) (*AdvancedStatistics, error)
}

type statsService struct {
	reportRepo repository.ReportRepository
	cache      *cache.Client
}

// NewStatsService creates a new statistics service.
func NewStatsService(reportRepo repository.ReportRepository, cache *cache.Client) StatsService {
	return &statsService{
		reportRepo: reportRepo,
		cache:      cache,
	}
}

// StatusSummary counts reports grouped by status, with caching.
func (s *statsService) StatusSummary(ctx context.Context) (*StatusSummary, error) {
	if data, _ := s.cache.Get(ctx, statsStatusCacheKey); data != nil {
		var cached StatusSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	counts, err := s.reportRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	summary := &StatusSummary{}
	for _, c := range counts {
		switch c.Status {
		case model.ReportStatusNew:
			summary.New = c.Count
		case model.ReportStatusInProgress:
			summary.InProgress = c.Count
		case model.ReportStatusDone:
			summary.Done = c.Count
		}
	}

	if payload, err := json.Marshal(summary); err == nil {
		_ = s.cache.Set(ctx, statsStatusCacheKey, payload, statsCacheTTL)
	}
	return summary, nil
}

// AdvancedStatistics computes the monthly, top-room, top-facility and
// resolution-time views, with caching.
func (s *statsService) AdvancedStatistics(ctx context.Context) (*AdvancedStatistics, error) {
	if data, _ := s.cache.Get(ctx, statsAdvancedCacheKey); data != nil {
		var cached AdvancedStatistics
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	monthly, err := s.reportRepo.CountByMonth(ctx)
	if err != nil {
		return nil, err
	}
	topRooms, err := s.reportRepo.TopRooms(ctx, topEntryLimit)
	if err != nil {
		return nil, err
	}
	topFacilities, err := s.reportRepo.TopFacilities(ctx, topEntryLimit)
	if err != nil {
		return nil, err
	}
	avgDays, err := s.reportRepo.AverageResolutionDays(ctx)
	if err != nil {
		return nil, err
	}

	stats := &AdvancedStatistics{
		MonthlyStats:  monthly,
		TopRooms:      topRooms,
		TopFacilities: topFacilities,
	}
	if avgDays != nil {
		rounded, _ := decimal.NewFromFloat(*avgDays).Round(2).Float64()
		stats.AvgTime = &rounded
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsAdvancedCacheKey, payload, statsCacheTTL)
	}
	return stats, nil
}
