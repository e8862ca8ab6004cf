package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swiftship/ratequote/internal/apperrors"
	portssvc "github.com/swiftship/ratequote/internal/core/ports/services"
	"github.com/swiftship/ratequote/internal/dto"
	"github.com/swiftship/ratequote/internal/middleware"
)

// RateHandler handles admin requests related to rate tables.
type RateHandler struct {
	rateService portssvc.RateSvcFacade
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(rs portssvc.RateSvcFacade) *RateHandler {
	return &RateHandler{rateService: rs}
}

// ImportRates godoc
// @Summary Import a country's rate table
// @Description Uploads a CSV file (zone,weight,package_type,tier,price) and upserts every row
// @Tags rates
// @Accept  mpfd
// @Produce  json
// @Param   code path string true "Country Code"
// @Param   file formData file true "Rate table CSV"
// @Success 200 {object} dto.RateImportResult
// @Failure 400 {object} map[string]string "Malformed upload"
// @Failure 404 {object} map[string]string "Country not found"
// @Failure 500 {object} map[string]string "Failed to import rates"
// @Security BearerAuth
// @Router /admin/countries/{code}/rates/import [post]
func (h *RateHandler) ImportRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	importerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Importer user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Rate import without file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A rate table file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded rate file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	logger = logger.With(slog.String("country_code", code), slog.String("filename", fileHeader.Filename))
	logger.Info("Received rate table import")

	result, err := h.rateService.ImportRateRows(c.Request.Context(), code, file, importerUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Rate file rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": stripSentinel(err, apperrors.ErrValidation)})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Country not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		default:
			logger.Error("Failed to import rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import rates"})
		}
		return
	}

	logger.Info("Rate table imported", slog.Int("rows", result.Imported))
	c.JSON(http.StatusOK, result)
}

// ListRates godoc
// @Summary List a country's rate table
// @Tags rates
// @Produce  json
// @Param   code path string true "Country Code"
// @Success 200 {array} dto.RateRowResponse
// @Failure 404 {object} map[string]string "Country not found"
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Security BearerAuth
// @Router /admin/countries/{code}/rates [get]
func (h *RateHandler) ListRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	rows, err := h.rateService.ListRateRows(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Country not found", slog.String("country_code", code))
			c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		} else {
			logger.Error("Failed to list rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateRowResponse(rows))
}
