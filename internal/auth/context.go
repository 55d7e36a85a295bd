package auth

import (
	"github.com/labstack/echo/v4"
)

// ContextKey is where the JWT middleware stores the parsed claims.
const ContextKey = "user"

// FromContext extracts the session claims placed in the Echo context by
// the JWT middleware. The second return value is false when the request
// carries no usable token.
func FromContext(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ContextKey).(*Claims)
	return claims, ok
}
