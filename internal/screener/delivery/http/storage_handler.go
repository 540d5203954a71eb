package http

import (
	"encoding/json"
	"net/http"

	"golang-stock-screener/internal/screener/dto"
	"golang-stock-screener/internal/screener/service"
	"golang-stock-screener/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StorageHandler handles HTTP requests for the persisted scan snapshot.
type StorageHandler struct {
	snapshotService service.SnapshotService
	logger          *logger.Logger
}

// NewStorageHandler creates a new StorageHandler.
func NewStorageHandler(snapshotService service.SnapshotService, logger *logger.Logger) *StorageHandler {
	return &StorageHandler{snapshotService: snapshotService, logger: logger}
}

// RegisterRoutes registers the storage routes to the Echo group.
func (h *StorageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/load", h.Load)
	g.POST("/save", h.Save)
}

// Load godoc
// @Summary Load the latest scan
// @Description Returns the last saved snapshot, or {stocks: [], scanStats: null, timestamp: null} when nothing was saved
// @Tags storage
// @Produce  json
// @Success 200 {object} dto.Snapshot
// @Failure 500 {object} dto.ErrorResponse
// @Router /storage/load [get]
func (h *StorageHandler) Load(c echo.Context) error {
	ctx := c.Request().Context()

	snapshot, err := h.snapshotService.Load(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to load snapshot", logger.ErrorField(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// Save godoc
// @Summary Save a scan
// @Description Overwrites the stored snapshot with the given stocks and scan stats
// @Tags storage
// @Accept  json
// @Produce  json
// @Param   snapshot  body    dto.SaveSnapshotRequest   true    "Scan to save"
// @Success 200 {object} dto.SaveSnapshotResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /storage/save [post]
func (h *StorageHandler) Save(c echo.Context) error {
	ctx := c.Request().Context()

	if !h.snapshotService.Configured() {
		return writeError(c, service.ErrKVNotConfigured)
	}

	// decoded as JSON regardless of Content-Type
	var req dto.SaveSnapshotRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "Failed to parse snapshot payload", logger.ErrorField(err))
		return writeError(c, err)
	}

	if _, err := h.snapshotService.Save(ctx, &req); err != nil {
		h.logger.ErrorContext(ctx, "Failed to save snapshot", logger.ErrorField(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SaveSnapshotResponse{Success: true})
}
