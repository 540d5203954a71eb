package http

import (
	"net/http"

	"golang-stock-screener/internal/screener/dto"
	"golang-stock-screener/internal/screener/service"
	"golang-stock-screener/pkg/common"
	"golang-stock-screener/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ScoreHandler handles HTTP requests for weights and composite ranking.
type ScoreHandler struct {
	scoreService service.ScoreService
	logger       *logger.Logger
}

// NewScoreHandler creates a new ScoreHandler.
func NewScoreHandler(scoreService service.ScoreService, logger *logger.Logger) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService, logger: logger}
}

// RegisterRoutes registers the weight and ranking routes to the Echo group.
func (h *ScoreHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/weights", h.GetWeights)
	g.PUT("/weights", h.UpdateWeights)
	g.POST("/scores/rank", h.Rank)
}

// GetWeights godoc
// @Summary Get weights
// @Description Get the factor weights of the current session, or the defaults
// @Tags scores
// @Produce  json
// @Param   X-Session-ID  header  string  false  "Session id"
// @Success 200 {object} dto.WeightsResponse
// @Router /weights [get]
func (h *ScoreHandler) GetWeights(c echo.Context) error {
	sessionID := c.Request().Header.Get(common.HeaderSessionID)
	return c.JSON(http.StatusOK, dto.WeightsResponse{
		SessionID: sessionID,
		Weights:   h.scoreService.Weights(sessionID),
	})
}

// UpdateWeights godoc
// @Summary Update weights
// @Description Replace the factor weights of the current session; a session is created when none is given
// @Tags scores
// @Accept  json
// @Produce  json
// @Param   X-Session-ID  header  string  false  "Session id"
// @Param   weights  body    dto.WeightsRequest   true    "Weights, each 0-100"
// @Success 200 {object} dto.WeightsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /weights [put]
func (h *ScoreHandler) UpdateWeights(c echo.Context) error {
	var req dto.WeightsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	sessionID := h.scoreService.SetWeights(c.Request().Context(), c.Request().Header.Get(common.HeaderSessionID), req.Weights)
	c.Response().Header().Set(common.HeaderSessionID, sessionID)

	return c.JSON(http.StatusOK, dto.WeightsResponse{
		SessionID: sessionID,
		Weights:   h.scoreService.Weights(sessionID),
	})
}

// Rank godoc
// @Summary Rank stocks
// @Description Compute composite scores and sort stocks, highest first
// @Tags scores
// @Accept  json
// @Produce  json
// @Param   X-Session-ID  header  string  false  "Session id"
// @Param   request  body    dto.RankRequest   true    "Stocks and optional weights"
// @Success 200 {object} dto.RankResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /scores/rank [post]
func (h *ScoreHandler) Rank(c echo.Context) error {
	var req dto.RankRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	stocks, weights := h.scoreService.Rank(c.Request().Header.Get(common.HeaderSessionID), req.Stocks, req.Weights)
	return c.JSON(http.StatusOK, dto.RankResponse{Stocks: stocks, Weights: weights})
}
