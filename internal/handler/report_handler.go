package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "roomcare/internal/errors"
	"roomcare/internal/model"
	"roomcare/internal/service"
)

// ReportHandler handles report lifecycle endpoints.
type ReportHandler struct {
	reportService service.ReportService
	imageStore    *service.ImageStore
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService, imageStore *service.ImageStore) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		imageStore:    imageStore,
	}
}

// UpdateStatusRequest represents a report status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in-progress done"`
}

// CreateReport godoc
// @Summary File a maintenance report
// @Description Multipart form with room_number, facility, description and an optional image file.
// @Tags reports
// @Accept mpfd
// @Produce json
// @Param room_number formData string true "Room number"
// @Param facility formData string false "Facility name"
// @Param description formData string false "Problem description"
// @Param image formData file false "Photo of the problem"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /report [post]
func (h *ReportHandler) CreateReport(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	roomNumber := c.FormValue("room_number")
	if roomNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: "room_number is required"})
	}
	facility := c.FormValue("facility")
	description := c.FormValue("description")

	var imageURL string
	if file, err := c.FormFile("image"); err == nil && file != nil {
		imageURL, err = h.imageStore.Save(file)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "failed to store image"})
		}
	}

	report, err := h.reportService.CreateReport(c.Request().Context(), claims.UserID, roomNumber, facility, description, imageURL)
	if err != nil {
		// A report against an unknown room is a client error, not a 404.
		if errors.Is(err, apperrors.ErrRoomNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: err.Error()})
		}
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "report created",
		"report":  report,
	})
}

// ListReports godoc
// @Summary List reports visible to the caller
// @Description Users see only their own room's reports regardless of filters; admins may filter by any room.
// @Tags reports
// @Produce json
// @Param status query string false "Status filter"
// @Param room_number query string false "Room filter (admin only)"
// @Success 200 {array} model.Report
// @Security BearerAuth
// @Router /reports [get]
func (h *ReportHandler) ListReports(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	reports, err := h.reportService.ListReports(c.Request().Context(), claims, c.QueryParam("status"), c.QueryParam("room_number"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, reports)
}

// UpdateStatus godoc
// @Summary Update a report's status
// @Description Sets the given status and touches updated_at. Transition order is not enforced.
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /reports/{id} [patch]
func (h *ReportHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: "invalid report id"})
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: err.Error()})
	}

	report, err := h.reportService.UpdateStatus(c.Request().Context(), id, model.ReportStatus(req.Status))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "status updated",
		"report":  report,
	})
}
