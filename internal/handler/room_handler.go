package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "roomcare/internal/errors"
	"roomcare/internal/service"
)

// RoomHandler handles room registry and deletion endpoints.
type RoomHandler struct {
	roomService service.RoomService
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// CreateRoomRequest represents a room creation request.
type CreateRoomRequest struct {
	RoomNumber string   `json:"room_number" validate:"required"`
	Floor      int      `json:"floor"`
	Facilities []string `json:"facilities"`
	Occupied   bool     `json:"occupied"`
}

// UpdateRoomRequest represents a full room update.
type UpdateRoomRequest struct {
	RoomNumber string   `json:"room_number" validate:"required"`
	Floor      int      `json:"floor"`
	Facilities []string `json:"facilities"`
	Occupied   bool     `json:"occupied"`
}

// PatchRoomRequest represents a partial room update. Absent fields are
// left untouched.
type PatchRoomRequest struct {
	RoomNumber *string   `json:"room_number"`
	Floor      *int      `json:"floor"`
	Facilities *[]string `json:"facilities"`
	Occupied   *bool     `json:"occupied"`
}

// DeleteRoomRequest carries the force flag and reason for a deletion.
// Both may also arrive as query parameters.
type DeleteRoomRequest struct {
	Force  bool   `json:"force"`
	Reason string `json:"reason"`
}

// ListRooms godoc
// @Summary List rooms, optionally by floor
// @Tags rooms
// @Produce json
// @Param floor query int false "Floor filter"
// @Success 200 {array} model.Room
// @Failure 400 {object} errors.ErrorResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c echo.Context) error {
	var floor *int
	if raw := c.QueryParam("floor"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: "invalid floor"})
		}
		floor = &parsed
	}

	rooms, err := h.roomService.ListRooms(c.Request().Context(), floor)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, rooms)
}

// GetRoom godoc
// @Summary Get a room by number
// @Tags rooms
// @Produce json
// @Param room_number path string true "Room number"
// @Success 200 {object} model.Room
// @Failure 404 {object} errors.ErrorResponse
// @Router /rooms/{room_number} [get]
func (h *RoomHandler) GetRoom(c echo.Context) error {
	room, err := h.roomService.GetRoomByNumber(c.Request().Context(), c.Param("room_number"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, room)
}

// CreateRoom godoc
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body CreateRoomRequest true "Room data"
// @Success 201 {object} model.Room
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: err.Error()})
	}

	room, err := h.roomService.CreateRoom(c.Request().Context(), req.RoomNumber, req.Floor, req.Facilities, req.Occupied)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, room)
}

// UpdateRoom godoc
// @Summary Replace a room's fields
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body UpdateRoomRequest true "Room data"
// @Success 200 {object} model.Room
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: "invalid room id"})
	}

	var req UpdateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: err.Error()})
	}

	room, err := h.roomService.UpdateRoom(c.Request().Context(), id, req.RoomNumber, req.Floor, req.Facilities, req.Occupied)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, room)
}

// PatchRoom godoc
// @Summary Partially update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body PatchRoomRequest true "Fields to update"
// @Success 200 {object} model.Room
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /rooms/{id} [patch]
func (h *RoomHandler) PatchRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: "invalid room id"})
	}

	var req PatchRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: "invalid request body"})
	}

	room, err := h.roomService.PatchRoom(c.Request().Context(), id, service.RoomPatch{
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
		Occupied:   req.Occupied,
		Facilities: req.Facilities,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, room)
}

// DeleteRoom godoc
// @Summary Delete a room, with an occupancy guard
// @Description Occupied or assigned rooms require force=true and a reason. Deletion cascades to the room's reports and clears tenant room references.
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body DeleteRoomRequest false "Force flag and reason"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: "invalid room id"})
	}

	// The mobile client sends force/reason in the DELETE body; curl
	// users tend to use the query string. Accept both.
	var req DeleteRoomRequest
	_ = c.Bind(&req)
	if c.QueryParam("force") == "true" {
		req.Force = true
	}
	if reason := c.QueryParam("reason"); reason != "" && req.Reason == "" {
		req.Reason = reason
	}

	roomNumber, err := h.roomService.DeleteRoom(c.Request().Context(), claims.UserID, claims.Username, id, req.Force, req.Reason)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":     "room deleted",
		"room_number": roomNumber,
	})
}
