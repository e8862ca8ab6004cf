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

// CountryHandler handles admin requests related to countries.
type CountryHandler struct {
	countryService portssvc.CountrySvcFacade
}

// NewCountryHandler creates a new CountryHandler.
func NewCountryHandler(cs portssvc.CountrySvcFacade) *CountryHandler {
	return &CountryHandler{countryService: cs}
}

// CreateCountry godoc
// @Summary Create a new country
// @Description Creates a country with its pricing configuration, bulk content and placeholder fields
// @Tags countries
// @Accept  json
// @Produce  json
// @Param   country body dto.CreateCountryRequest true "Country details"
// @Success 201 {object} dto.CountryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Country code already exists"
// @Failure 500 {object} map[string]string "Failed to create country"
// @Security BearerAuth
// @Router /admin/countries [post]
func (h *CountryHandler) CreateCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCountry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("country_code", req.Code))
	logger.Info("Received request to create country")

	country, err := h.countryService.CreateCountry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Attempted to create duplicate country")
			c.JSON(http.StatusConflict, gin.H{"error": stripSentinel(err, apperrors.ErrDuplicate)})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating country", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": stripSentinel(err, apperrors.ErrValidation)})
		default:
			logger.Error("Failed to create country", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create country"})
		}
		return
	}

	logger.Info("Country created successfully")
	c.JSON(http.StatusCreated, dto.ToCountryResponse(country))
}

// UpdateCountry godoc
// @Summary Update a country
// @Description Updates a country's configuration and re-submits its content; the code is immutable
// @Tags countries
// @Accept  json
// @Produce  json
// @Param   code path string true "Country Code"
// @Param   country body dto.UpdateCountryRequest true "Country details"
// @Success 200 {object} dto.CountryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Country not found"
// @Failure 500 {object} map[string]string "Failed to update country"
// @Security BearerAuth
// @Router /admin/countries/{code} [put]
func (h *CountryHandler) UpdateCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	var req dto.UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCountry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("country_code", code))
	logger.Info("Received request to update country")

	country, err := h.countryService.UpdateCountry(c.Request.Context(), code, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Country not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating country", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": stripSentinel(err, apperrors.ErrValidation)})
		default:
			logger.Error("Failed to update country", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update country"})
		}
		return
	}

	logger.Info("Country updated successfully")
	c.JSON(http.StatusOK, dto.ToCountryResponse(country))
}

// GetCountry godoc
// @Summary Get a country by code
// @Tags countries
// @Produce  json
// @Param   code path string true "Country Code"
// @Success 200 {object} dto.CountryResponse
// @Failure 404 {object} map[string]string "Country not found"
// @Failure 500 {object} map[string]string "Failed to retrieve country"
// @Security BearerAuth
// @Router /admin/countries/{code} [get]
func (h *CountryHandler) GetCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	country, err := h.countryService.GetCountryByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Country not found", slog.String("country_code", code))
			c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		} else {
			logger.Error("Failed to get country", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve country"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCountryResponse(country))
}

// ListCountries godoc
// @Summary List all countries
// @Tags countries
// @Produce  json
// @Success 200 {array} dto.CountryResponse
// @Failure 500 {object} map[string]string "Failed to list countries"
// @Security BearerAuth
// @Router /admin/countries [get]
func (h *CountryHandler) ListCountries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	countries, err := h.countryService.ListCountries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list countries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list countries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCountryResponse(countries))
}
