package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the standard header name used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the key used to store the request ID in Fiber's context locals.
	RequestIDLocalKey = "request_id"
)

// RequestID ensures every request has a request ID.
//
// Behavior:
// - Reads X-Request-ID from the incoming request header.
// - If missing, generates a new UUID.
// - Stores the value in Fiber context locals under RequestIDLocalKey.
// - Adds X-Request-ID to the response header with the same value.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		AssignRequestID(c)
		return c.Next()
	}
}

// AssignRequestID stores and echoes the request ID for c, taking it from
// X-Request-ID or generating one. It also serves requests rejected by the
// server before any middleware ran.
func AssignRequestID(c *fiber.Ctx) string {
	id := c.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	c.Locals(RequestIDLocalKey, id)
	c.Set(RequestIDHeader, id)
	return id
}

// RequestIDFromCtx returns the request ID stored by RequestID, or "".
func RequestIDFromCtx(c *fiber.Ctx) string {
	if s, ok := c.Locals(RequestIDLocalKey).(string); ok {
		return s
	}
	return ""
}
