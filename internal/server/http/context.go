package httpserver

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

var (
	reqStartUnix = time.Now().UnixNano()
	reqCounter   uint64
)

// makeReqID returns external X-Request-Id if provided, otherwise generates UUIDv4;
// if uuid generation fails, fallback to timestamp+counter.
func makeReqID(c *fiber.Ctx) string {
	if hdr := c.Get(fiber.HeaderXRequestID); hdr != "" {
		return hdr
	}
	if v, err := uuid.NewRandom(); err == nil {
		return v.String()
	}
	n := atomic.AddUint64(&reqCounter, 1)
	return fmt.Sprintf("%x-%x", reqStartUnix, n)
}

// requestID assigns the request id once and echoes it back to the caller.
func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := makeReqID(c)
		c.Locals(requestIDKey, id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}

// reqLogger returns printf-style logger prefixed with request id.
func reqLogger(c *fiber.Ctx) func(format string, args ...any) {
	reqID, _ := c.Locals(requestIDKey).(string)
	if reqID == "" {
		reqID = makeReqID(c)
	}
	return func(format string, args ...any) {
		log.Printf("[req=%s]"+format, append([]any{reqID}, args...)...)
	}
}
