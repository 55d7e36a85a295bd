package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roomcare/internal/service"
)

// StatsHandler handles the admin statistics endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new statistics handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// StatusSummary godoc
// @Summary Report counts by status
// @Tags statistics
// @Produce json
// @Success 200 {object} service.StatusSummary
// @Security BearerAuth
// @Router /admin/reports/statistics [get]
func (h *StatsHandler) StatusSummary(c echo.Context) error {
	summary, err := h.statsService.StatusSummary(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

// AdvancedStatistics godoc
// @Summary Monthly counts, top rooms, top facilities and average resolution time
// @Tags statistics
// @Produce json
// @Success 200 {object} service.AdvancedStatistics
// @Security BearerAuth
// @Router /admin/reports/advance-statistics [get]
func (h *StatsHandler) AdvancedStatistics(c echo.Context) error {
	stats, err := h.statsService.AdvancedStatistics(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
