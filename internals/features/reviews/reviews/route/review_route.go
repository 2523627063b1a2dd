package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reviewController "wasitku_backend/internals/features/reviews/reviews/controller"
	"wasitku_backend/internals/middlewares"
	"wasitku_backend/internals/search"
)

// Routes publik: kirim ulasan dibatasi rate limiter ketat per IP.
func ReviewPublicRoutes(r fiber.Router, db *gorm.DB, searchClient *search.Client) {
	ctl := reviewController.NewReviewController(db, searchClient)

	rv := r.Group("/reviews")
	rv.Post("/", middlewares.PublicReviewRateLimiter(), ctl.CreateReview)
	rv.Get("/wasit/:id", ctl.ListReviewsByWasit)
	rv.Get("/search", ctl.SearchReviews)
}
