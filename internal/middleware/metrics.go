package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/pet-invest/internal/metrics"
)

// Metrics records request totals and durations labelled by route pattern.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		start := time.Now()

		gctx.Next()

		path := gctx.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.ObserveRequest(gctx.Request.Method, path, gctx.Writer.Status(), time.Since(start))
	}
}
