package middlewares

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// RequestIDMiddleware menempelkan X-Request-ID ke setiap request
// (dipakai juga oleh RequestLogger di bawah).
func RequestIDMiddleware() fiber.Handler {
	return requestid.New()
}

// RequestLogger mencatat satu baris per request: method, path, status,
// durasi, dan request id supaya gampang dilacak di log.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		log.Printf("[INFO] %s %s -> %d (%s) rid=%s",
			c.Method(), c.Path(), c.Response().StatusCode(),
			time.Since(start).Round(time.Millisecond), rid)
		return err
	}
}
