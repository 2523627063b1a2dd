package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wasitku_backend/internals/constants"
	userController "wasitku_backend/internals/features/users/users/controller"
	authMiddleware "wasitku_backend/internals/middlewares/auth"
)

/*
Routes user:
- /api/u/profile  → akun sendiri (semua role)
- /api/a/users    → admin ke atas: baca + ganti email
- /api/o/users    → khusus super_admin: buat + hapus akun
*/
func UserProfileRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserProfileController(db)

	p := r.Group("/profile")
	p.Get("/", ctl.GetMyProfile)
	p.Patch("/", ctl.UpdateMyProfile)
	p.Post("/photo", ctl.UploadProfilePhoto)
}

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserAdminController(db)

	us := r.Group("/users",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("kelola user"), constants.AdminAndAbove...),
	)
	us.Get("/", ctl.ListUsers)
	us.Get("/:id", ctl.GetUser)
	us.Patch("/:id/email", ctl.UpdateUserEmail)
}

func UserOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserAdminController(db)

	us := r.Group("/users",
		authMiddleware.OnlyRoles(constants.RoleErrorSuperAdmin("kelola akun"), constants.SuperAdminOnly...),
	)
	us.Post("/", ctl.CreateUser)
	us.Delete("/:id", ctl.DeleteUser)
}
