package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome godoc
// @Summary Health check
// @Tags health
// @Produce  json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
