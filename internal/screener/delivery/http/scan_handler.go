package http

import (
	"net/http"

	"golang-stock-screener/internal/screener/dto"
	"golang-stock-screener/internal/screener/service"
	"golang-stock-screener/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ScanHandler handles HTTP requests that trigger scans.
type ScanHandler struct {
	scanService     service.ScanService
	snapshotService service.SnapshotService
	logger          *logger.Logger
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(scanService service.ScanService, snapshotService service.SnapshotService, logger *logger.Logger) *ScanHandler {
	return &ScanHandler{scanService: scanService, snapshotService: snapshotService, logger: logger}
}

// RegisterRoutes registers the scan routes to the Echo group.
func (h *ScanHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Scan)
}

// Scan godoc
// @Summary Run a scan
// @Description Scan the configured universe, rank it with the default weights and optionally save it
// @Tags scan
// @Produce  json
// @Param   save  query   bool  false  "Save the result as the latest snapshot"
// @Success 200 {object} entity.ScanResult
// @Failure 500 {object} dto.ErrorResponse
// @Router /scan [post]
func (h *ScanHandler) Scan(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ScanRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request parameters"})
	}

	if req.Save && !h.snapshotService.Configured() {
		return writeError(c, service.ErrKVNotConfigured)
	}

	result, err := h.scanService.Run(ctx, req.Save)
	if err != nil {
		h.logger.ErrorContext(ctx, "Scan failed", logger.ErrorField(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
