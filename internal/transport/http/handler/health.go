package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health answers the public liveness probe used by the frontend and load balancers.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Job Portal Backend is running"})
}

// Status is the root banner.
func Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "JobPortal Backend is running!", "timestamp": time.Now().UTC()})
}
