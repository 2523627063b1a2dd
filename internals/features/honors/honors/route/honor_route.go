package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wasitku_backend/internals/constants"
	honorController "wasitku_backend/internals/features/honors/honors/controller"
	honorService "wasitku_backend/internals/features/honors/honors/service"
	authMiddleware "wasitku_backend/internals/middlewares/auth"
)

func HonorUserRoutes(r fiber.Router, db *gorm.DB, payout honorService.PayoutClient) {
	ctl := honorController.NewHonorController(db, payout)

	hn := r.Group("/honors")
	hn.Post("/", ctl.CreateHonor)
	hn.Get("/my", ctl.MyHonors)
	hn.Patch("/:id", ctl.UpdateHonor)
	hn.Post("/:id/submit", ctl.SubmitHonor)
	hn.Delete("/:id", ctl.DeleteHonor)
}

func HonorAdminRoutes(r fiber.Router, db *gorm.DB, payout honorService.PayoutClient) {
	ctl := honorController.NewHonorController(db, payout)

	hn := r.Group("/honors",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("verifikasi honor"), constants.AdminAndAbove...),
	)
	hn.Get("/", ctl.ListHonors)
	hn.Post("/:id/verify", ctl.VerifyHonor)
}
