package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "roomcare/internal/errors"
	"roomcare/internal/service"
)

// UserHandler handles profile endpoints for the authenticated user.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdatePhoneRequest represents a phone update request.
type UpdatePhoneRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// UpdatePhone godoc
// @Summary Update the authenticated user's phone number
// @Tags user
// @Accept json
// @Produce json
// @Param request body UpdatePhoneRequest true "Phone number"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /user/phone [patch]
func (h *UserHandler) UpdatePhone(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req UpdatePhoneRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: "invalid request body"})
	}
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: "phone is required"})
	}

	user, err := h.userService.UpdatePhone(c.Request().Context(), claims.UserID, phone)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "phone updated",
		"user":    user,
	})
}
