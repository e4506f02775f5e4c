package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/msetrainings/nutrition/middlewares"
)

// GET /api
func (h *Controller) API(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"api_version": "1.0",
		"infos":       "Not yet implemented",
	})
}

// GET /healthz
func (h *Controller) Health(c *gin.Context) {
	sqlDB, err := middlewares.DB(c).DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		h.Log.WithError(err).Warn("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
