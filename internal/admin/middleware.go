// Package admin is the optional, run-scoped HTTP surface started by
// --serve-admin, adapted from the teacher's internal/api/routes +
// internal/api/middleware + cmd/api/main.go wiring: the same
// Gin-engine-plus-CORS shape (Recovery and CORS middleware only), reduced
// to the two endpoints an engine run can meaningfully expose.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows any origin to read the admin surface; unlike the
// teacher's API server this isn't gated by a configured origin list —
// it is a local, run-scoped diagnostic endpoint, not a multi-tenant API.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
