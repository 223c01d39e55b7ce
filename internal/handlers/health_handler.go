package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports that the server is up. It is registered outside the
// API-key group.
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} map[string]string "Server is up"
// @Router      /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
