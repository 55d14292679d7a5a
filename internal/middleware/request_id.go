package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID is the header carrying the request correlation ID.
const HeaderRequestID = "X-Request-ID"

// RequestID is a Fiber middleware that stamps each request with a
// correlation ID. An ID supplied by the client is kept; otherwise a fresh
// UUID is generated. The ID is echoed on the response and stored in the
// request context under "request_id".
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Locals("request_id", requestID)
		c.Set(HeaderRequestID, requestID)

		return c.Next()
	}
}
