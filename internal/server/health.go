package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness. There is no dependency to probe; the store
// is in-process memory.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
