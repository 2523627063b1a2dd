package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wasitku_backend/internals/constants"
	materialController "wasitku_backend/internals/features/learning/materials/controller"
	authMiddleware "wasitku_backend/internals/middlewares/auth"
)

func MaterialUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := materialController.NewMaterialController(db)

	mt := r.Group("/materials")
	mt.Get("/", ctl.ListMaterials)
	mt.Get("/:slug", ctl.GetMaterialBySlug)
}

func MaterialAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := materialController.NewMaterialController(db)

	mt := r.Group("/materials",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("kelola materi"), constants.AdminAndAbove...),
	)
	mt.Post("/", ctl.CreateMaterial)
	mt.Patch("/:id", ctl.UpdateMaterial)
	mt.Delete("/:id", ctl.DeleteMaterial)
}
