package middleware

import (
	"strconv"
	"time"

	"staffdir/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// RequestMetrics records the count and latency of every request.
func RequestMetrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// route template is only known after routing
		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		// Fiber reports a path with no route as a 404 error, and c.Route() then
		// names whatever handler ran last. Handlers answering 404 themselves return nil.
		if status == fiber.StatusNotFound && err != nil {
			route = "unmatched"
		}

		m.ObserveRequest(c.Method(), route, strconv.Itoa(status), time.Since(start).Seconds())
		return err
	}
}
