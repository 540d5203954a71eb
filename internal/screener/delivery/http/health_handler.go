package http

import (
	"net/http"

	"golang-stock-screener/internal/screener/dto"
	"golang-stock-screener/internal/screener/service"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and whether the KV store is configured.
type HealthHandler struct {
	snapshotService service.SnapshotService
}

func NewHealthHandler(snapshotService service.SnapshotService) *HealthHandler {
	return &HealthHandler{snapshotService: snapshotService}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:       "ok",
		KVConfigured: h.snapshotService.Configured(),
	})
}

// RegisterRoutes registers the health route to the Echo group.
func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Health)
}
