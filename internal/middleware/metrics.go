package middleware

import (
	"time"

	"ychet/internal/metrics"

	"github.com/gin-gonic/gin"
)

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.InFlightInc()
		start := time.Now()
		defer metrics.InFlightDec()

		c.Next()

		// шаблон маршрута, чтобы /clients/edit/1 и /clients/edit/2 были одной серией
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTP(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
