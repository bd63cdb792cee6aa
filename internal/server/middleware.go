package server

import (
	"auction-registry/services/bidding/helpers"
	"auction-registry/utils"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing and caller identity
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":    c.Request.Method,
		"path":      c.Request.URL.Path,
		"client_id": c.GetHeader(helpers.ClientIDHeader),
		"status":    c.Writer.Status(),
		"latency":   time.Since(start).String(),
	})
}
