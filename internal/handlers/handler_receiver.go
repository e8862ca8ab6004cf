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

// ReceiverHandler handles admin requests related to receivers.
type ReceiverHandler struct {
	receiverService portssvc.ReceiverSvcFacade
}

// NewReceiverHandler creates a new ReceiverHandler.
func NewReceiverHandler(rs portssvc.ReceiverSvcFacade) *ReceiverHandler {
	return &ReceiverHandler{receiverService: rs}
}

// CreateReceiver godoc
// @Summary Create a receiver
// @Tags receivers
// @Accept  json
// @Produce  json
// @Param   code path string true "Country Code"
// @Param   receiver body dto.CreateReceiverRequest true "Receiver details"
// @Success 201 {object} dto.ReceiverResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Country not found"
// @Failure 500 {object} map[string]string "Failed to create receiver"
// @Security BearerAuth
// @Router /admin/countries/{code}/receivers [post]
func (h *ReceiverHandler) CreateReceiver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	var req dto.CreateReceiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReceiver", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	receiver, err := h.receiverService.CreateReceiver(c.Request.Context(), code, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Country not found", slog.String("country_code", code))
			c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		} else {
			logger.Error("Failed to create receiver", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create receiver"})
		}
		return
	}

	logger.Info("Receiver created successfully", slog.String("receiver_id", receiver.ReceiverID))
	c.JSON(http.StatusCreated, dto.ToReceiverResponse(receiver))
}

// UpdateReceiver godoc
// @Summary Update a receiver
// @Tags receivers
// @Accept  json
// @Produce  json
// @Param   code path string true "Country Code"
// @Param   receiverID path string true "Receiver ID"
// @Param   receiver body dto.UpdateReceiverRequest true "Receiver details"
// @Success 200 {object} dto.ReceiverResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Country or receiver not found"
// @Failure 500 {object} map[string]string "Failed to update receiver"
// @Security BearerAuth
// @Router /admin/countries/{code}/receivers/{receiverID} [put]
func (h *ReceiverHandler) UpdateReceiver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")
	receiverID := c.Param("receiverID")

	var req dto.UpdateReceiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateReceiver", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	receiver, err := h.receiverService.UpdateReceiver(c.Request.Context(), code, receiverID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Receiver not found", slog.String("receiver_id", receiverID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Receiver not found"})
		} else {
			logger.Error("Failed to update receiver", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update receiver"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiverResponse(receiver))
}

// DeleteReceiver godoc
// @Summary Delete a receiver
// @Tags receivers
// @Produce  json
// @Param   code path string true "Country Code"
// @Param   receiverID path string true "Receiver ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Country or receiver not found"
// @Failure 500 {object} map[string]string "Failed to delete receiver"
// @Security BearerAuth
// @Router /admin/countries/{code}/receivers/{receiverID} [delete]
func (h *ReceiverHandler) DeleteReceiver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")
	receiverID := c.Param("receiverID")

	if err := h.receiverService.DeleteReceiver(c.Request.Context(), code, receiverID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Receiver not found", slog.String("receiver_id", receiverID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Receiver not found"})
		} else {
			logger.Error("Failed to delete receiver", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete receiver"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListReceivers godoc
// @Summary List a country's receivers
// @Tags receivers
// @Produce  json
// @Param   code path string true "Country Code"
// @Success 200 {array} dto.ReceiverResponse
// @Failure 404 {object} map[string]string "Country not found"
// @Failure 500 {object} map[string]string "Failed to list receivers"
// @Security BearerAuth
// @Router /admin/countries/{code}/receivers [get]
func (h *ReceiverHandler) ListReceivers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	receivers, err := h.receiverService.ListReceivers(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Country not found", slog.String("country_code", code))
			c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		} else {
			logger.Error("Failed to list receivers", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list receivers"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListReceiverResponse(receivers))
}
