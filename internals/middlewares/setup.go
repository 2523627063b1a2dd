package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares pasang middleware dasar (urutan penting:
// recovery paling luar, lalu request id + logger, CORS, limiter global).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestIDMiddleware())
	app.Use(RequestLogger())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
