package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roomcare/internal/auth"
	apperrors "roomcare/internal/errors"
)

// currentClaims pulls the session claims from the request context.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := auth.FromContext(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{Message: "invalid token"})
	}
	return claims, nil
}

// serviceError translates a domain error into an Echo HTTP error with
// the standard {message} body.
func serviceError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
