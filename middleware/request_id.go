package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const ContextRequestIDKey = "requestID"

// RequestID attaches a unique id to every request, reusing the caller's
// X-Request-ID header when present.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("X-Request-ID", requestID)
		c.Locals(ContextRequestIDKey, requestID)

		return c.Next()
	}
}

func GetRequestID(c *fiber.Ctx) string {
	if requestID, ok := c.Locals(ContextRequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
