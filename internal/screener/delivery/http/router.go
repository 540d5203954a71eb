package http

import (
	"golang-stock-screener/internal/screener/service"
	"golang-stock-screener/pkg/common"
	"golang-stock-screener/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	swagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// Services groups the services exposed over HTTP.
type Services struct {
	Quote    service.QuoteService
	Snapshot service.SnapshotService
	Score    service.ScoreService
	Scan     service.ScanService
}

// NewRouter builds the Echo server with middleware and every route registered.
func NewRouter(svc Services, allowedOrigins []string, appLogger *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			c.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), id)))
		},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			appLogger.InfoContext(c.Request().Context(), "HTTP request", fields...)
			return nil
		},
	}))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  allowedOrigins,
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, common.HeaderSessionID},
		ExposeHeaders: []string{common.HeaderSessionID, echo.HeaderXRequestID},
	}))

	api := e.Group("/api")

	NewHealthHandler(svc.Snapshot).RegisterRoutes(api)
	NewQuoteHandler(svc.Quote, appLogger).RegisterRoutes(api.Group("/quote"))
	NewStorageHandler(svc.Snapshot, appLogger).RegisterRoutes(api.Group("/storage"))
	NewScoreHandler(svc.Score, appLogger).RegisterRoutes(api)
	if svc.Scan != nil {
		NewScanHandler(svc.Scan, svc.Snapshot, appLogger).RegisterRoutes(api.Group("/scan"))
	}

	e.GET("/swagger/*", swagger.WrapHandler)

	return e
}
