package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Liku-id/wukong-admin-api/internal/monitoring"
)

// Metrics records per-request counters and latency, labeled by the
// route template rather than the raw path to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}

		monitoring.ObserveRequest(ctx.Request.Method, route, ctx.Writer.Status(), time.Since(start))
	}
}
