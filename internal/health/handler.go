// Package health exposes a liveness endpoint.
package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler reports service liveness.
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
