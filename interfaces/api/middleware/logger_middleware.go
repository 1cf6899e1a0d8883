package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"todo-service/domain/ports"
	"todo-service/pkg/logger"
)

// LoggerMiddleware ให้เลข request (#N) แล้ว log ลง request logger ทุก request
// ต้องอยู่หลัง RequestIDMiddleware
func LoggerMiddleware(counter ports.RequestCounterPort, requestLog ports.LoggerPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		ctx := c.UserContext()

		n, err := counter.Next(ctx)
		if err != nil {
			logger.WarnContext(ctx, "Request counter failed", "error", err)
		}
		ctx = logger.ContextWithRequestNumber(ctx, n)
		c.SetUserContext(ctx)
		c.Locals(LocalsRequestNumber, n)

		requestLog.Info(ctx, fmt.Sprintf("Incoming request | #%d | resource: %s | HTTP Verb %s", n, c.Path(), c.Method()))

		// Process request
		err = c.Next()

		requestLog.Debug(ctx, fmt.Sprintf("request #%d duration: %dms", n, time.Since(start).Milliseconds()))

		return err
	}
}
