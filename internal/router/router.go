package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"roomcare/internal/auth"
	"roomcare/internal/config"
	apperrors "roomcare/internal/errors"
	"roomcare/internal/handler"
	"roomcare/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	roomHandler *handler.RoomHandler,
	reportHandler *handler.ReportHandler,
	statsHandler *handler.StatsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded report images.
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/rooms", roomHandler.ListRooms)
	api.GET("/rooms/:room_number", roomHandler.GetRoom)

	// Secured routes (require a valid session token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ContextKey: auth.ContextKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
	}))

	secured.PATCH("/user/phone", userHandler.UpdatePhone)
	secured.POST("/report", reportHandler.CreateReport)
	secured.GET("/reports", reportHandler.ListReports)

	// Admin routes
	admin := secured.Group("", RequireAdmin)
	admin.POST("/rooms", roomHandler.CreateRoom)
	admin.PUT("/rooms/:id", roomHandler.UpdateRoom)
	admin.PATCH("/rooms/:id", roomHandler.PatchRoom)
	admin.DELETE("/rooms/:id", roomHandler.DeleteRoom)
	admin.PATCH("/reports/:id", reportHandler.UpdateStatus)
	admin.GET("/admin/reports", reportHandler.ListReports)
	admin.PATCH("/admin/reports/:id/status", reportHandler.UpdateStatus)
	admin.GET("/admin/reports/statistics", statsHandler.StatusSummary)
	admin.GET("/admin/reports/advance-statistics", statsHandler.AdvancedStatistics)
}

// RequireAdmin rejects callers without the admin role.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := auth.FromContext(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{Message: "invalid token"})
		}
		if claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{Message: "admin only"})
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
