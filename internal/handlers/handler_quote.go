package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/swiftship/ratequote/internal/apperrors"
	portssvc "github.com/swiftship/ratequote/internal/core/ports/services"
	"github.com/swiftship/ratequote/internal/dto"
	"github.com/swiftship/ratequote/internal/middleware"
)

// quoteRequestKeys are the structural keys of a quote request; everything
// else in the body is a candidate dynamic placeholder value.
var quoteRequestKeys = map[string]struct{}{
	"country_code": {},
	"receiver_id":  {},
	"packages":     {},
}

// QuoteHandler handles the public quote endpoint.
type QuoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(qs portssvc.QuoteSvcFacade) *QuoteHandler {
	return &QuoteHandler{quoteService: qs}
}

// ComputeQuote godoc
// @Summary Compute a shipping quote
// @Description Computes per-tier prices and localized content for a declared package list
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quote body dto.QuoteRequest true "Quote request"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 404 {object} map[string]string "Country, receiver or rate not found"
// @Failure 500 {object} map[string]string "Failed to compute quote"
// @Router /quote [post]
func (h *QuoteHandler) ComputeQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.QuoteRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		logger.Warn("Failed to bind quote request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	req.Extras = extractExtraFields(c)

	logger = logger.With(slog.String("country_code", req.CountryCode), slog.Int("package_count", len(req.Packages)))
	logger.Info("Received quote request")

	quote, err := h.quoteService.ComputeQuote(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Quote request failed validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": stripSentinel(err, apperrors.ErrValidation)})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Quote lookup failed", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": stripSentinel(err, apperrors.ErrNotFound)})
		default:
			logger.Error("Failed to compute quote", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute quote"})
		}
		return
	}

	logger.Info("Quote computed successfully")
	c.JSON(http.StatusOK, quote)
}

// extractExtraFields pulls the non-structural string fields out of the
// request body. The content resolver filters them further against the
// country's replaceable-field allow-list.
func extractExtraFields(c *gin.Context) map[string]string {
	var raw map[string]any
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		return nil
	}

	extras := make(map[string]string)
	for key, value := range raw {
		if _, structural := quoteRequestKeys[key]; structural {
			continue
		}
		if s, ok := value.(string); ok {
			extras[key] = s
		}
	}
	return extras
}

// stripSentinel removes the sentinel prefix that error wrapping adds, leaving
// the human-readable message for the response body.
func stripSentinel(err error, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
