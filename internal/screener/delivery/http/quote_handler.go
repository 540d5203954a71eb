package http

import (
	"net/http"

	"golang-stock-screener/internal/screener/service"
	"golang-stock-screener/pkg/logger"

	"github.com/labstack/echo/v4"
)

// QuoteHandler handles HTTP requests for quotes.
type QuoteHandler struct {
	quoteService service.QuoteService
	logger       *logger.Logger
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quoteService service.QuoteService, logger *logger.Logger) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService, logger: logger}
}

// RegisterRoutes registers the quote routes to the Echo group.
func (h *QuoteHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetQuote)
}

// GetQuote godoc
// @Summary Get a quote
// @Description Proxy a single ticker quote from Yahoo Finance
// @Tags quotes
// @Produce  json
// @Param   ticker  query   string  true    "Ticker symbol"
// @Success 200 {object} entity.Quote
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quote [get]
func (h *QuoteHandler) GetQuote(c echo.Context) error {
	ctx := c.Request().Context()
	ticker := c.QueryParam("ticker")

	quote, err := h.quoteService.GetQuote(ctx, ticker)
	if err != nil {
		if errorStatus(err) == http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "Failed to get quote", logger.ErrorField(err), logger.StringField("ticker", ticker))
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, quote)
}
