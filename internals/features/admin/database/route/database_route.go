package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wasitku_backend/internals/constants"
	databaseController "wasitku_backend/internals/features/admin/database/controller"
	"wasitku_backend/internals/middlewares"
	authMiddleware "wasitku_backend/internals/middlewares/auth"
)

// Database ops hanya untuk super_admin dan dibatasi rate limiter ketat.
func DatabaseOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := databaseController.NewDatabaseController(db)

	dbg := r.Group("/database",
		authMiddleware.OnlyRoles(constants.RoleErrorSuperAdmin("operasi database"), constants.SuperAdminOnly...),
		middlewares.DatabaseOpsRateLimiter(),
	)
	dbg.Post("/export", ctl.ExportDatabase)
	dbg.Post("/import", ctl.ImportDatabase)
}
