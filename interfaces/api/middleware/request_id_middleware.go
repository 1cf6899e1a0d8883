package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"todo-service/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

// keys ใน c.Locals
const (
	LocalsRequestID     = "request_id"
	LocalsRequestNumber = "request_number"
)

// RequestIDMiddleware ใช้ X-Request-ID จาก client ถ้ามี ไม่งั้นสร้าง uuid ใหม่
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDHeader, requestID)

		ctx := logger.ContextWithRequestID(c.UserContext(), requestID)
		c.SetUserContext(ctx)
		c.Locals(LocalsRequestID, requestID)

		return c.Next()
	}
}

// GetRequestIDFromContext ดึง request ID จาก fiber context
func GetRequestIDFromContext(c *fiber.Ctx) string {
	if requestID, ok := c.Locals(LocalsRequestID).(string); ok {
		return requestID
	}
	return ""
}

// GetRequestNumberFromContext ดึงเลข request (#N) ที่ LoggerMiddleware ใส่ไว้
func GetRequestNumberFromContext(c *fiber.Ctx) int64 {
	if n, ok := c.Locals(LocalsRequestNumber).(int64); ok {
		return n
	}
	return 0
}
