package api

import (
	"log"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"storefront.GO/core/registry"
)

// RequestDuration stores the request start under registry.KeyRequestStart and
// reports the elapsed time in the X-Request-Duration-ms header.
func RequestDuration() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			c.Set(registry.KeyRequestStart, start)
			c.Response().Before(func() {
				c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(Elapsed(c), 10))
			})
			err := next(c)
			log.Printf("Request duration: %d ms", Elapsed(c))
			return err
		}
	}
}

// Elapsed returns the milliseconds since the request started, or 0 outside
// RequestDuration.
func Elapsed(c echo.Context) int64 {
	start, ok := c.Get(registry.KeyRequestStart).(time.Time)
	if !ok {
		return 0
	}
	return time.Since(start).Milliseconds()
}
