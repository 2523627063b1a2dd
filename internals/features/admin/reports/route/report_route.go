package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wasitku_backend/internals/constants"
	reportController "wasitku_backend/internals/features/admin/reports/controller"
	authMiddleware "wasitku_backend/internals/middlewares/auth"
)

func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportController.NewReportController(db)

	r.Get("/reports",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("laporan"), constants.AdminAndAbove...),
		ctl.GetReport,
	)
}
