package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrRoomNotFound is returned when a room is not found.
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomExists is returned when creating a room whose number is taken.
	ErrRoomExists = errors.New("room already exists")
	// ErrRoomInUse is returned when deleting an occupied or assigned room without force.
	ErrRoomInUse = errors.New("room has a tenant or assigned users, use force delete to remove it")
	// ErrReasonRequired is returned when a force delete carries no reason.
	ErrReasonRequired = errors.New("a reason is required when force deleting")
	// ErrReportNotFound is returned when a report is not found.
	ErrReportNotFound = errors.New("report not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Deletion guard
// violations are client errors (400), not conflicts, matching the API
// contract the mobile client expects.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return NewHTTPError(http.StatusNotFound, ErrRoomNotFound.Error())
	case errors.Is(err, ErrReportNotFound):
		return NewHTTPError(http.StatusNotFound, ErrReportNotFound.Error())
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error())
	case errors.Is(err, ErrRoomExists):
		return NewHTTPError(http.StatusBadRequest, ErrRoomExists.Error())
	case errors.Is(err, ErrRoomInUse):
		return NewHTTPError(http.StatusBadRequest, ErrRoomInUse.Error())
	case errors.Is(err, ErrReasonRequired):
		return NewHTTPError(http.StatusBadRequest, ErrReasonRequired.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
