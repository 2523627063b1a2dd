package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	databaseRoute "wasitku_backend/internals/features/admin/database/route"
	reportRoute "wasitku_backend/internals/features/admin/reports/route"
	evaluationRoute "wasitku_backend/internals/features/evaluations/evaluations/route"
	eventRoute "wasitku_backend/internals/features/events/events/route"
	forumRoute "wasitku_backend/internals/features/forums/forums/route"
	honorRoute "wasitku_backend/internals/features/honors/honors/route"
	honorService "wasitku_backend/internals/features/honors/honors/service"
	materialRoute "wasitku_backend/internals/features/learning/materials/route"
	reviewRoute "wasitku_backend/internals/features/reviews/reviews/route"
	userRoute "wasitku_backend/internals/features/users/users/route"
	authMiddleware "wasitku_backend/internals/middlewares/auth"
	"wasitku_backend/internals/search"
)

/*
Pembagian grup:
- /api/public → tanpa login (ulasan publik, baca materi)
- /api/u      → wajib login, semua role
- /api/a      → wajib login, admin & super_admin
- /api/o      → wajib login, khusus super_admin
*/
func SetupRoutes(app *fiber.App, db *gorm.DB, payout honorService.PayoutClient, searchClient *search.Client) {
	api := app.Group("/api")

	// publik
	public := api.Group("/public")
	reviewRoute.ReviewPublicRoutes(public, db, searchClient)
	materialRoute.MaterialUserRoutes(public, db)

	// login (semua role)
	user := api.Group("/u", authMiddleware.AuthMiddleware(db))
	userRoute.UserProfileRoutes(user, db)
	eventRoute.EventUserRoutes(user, db)
	honorRoute.HonorUserRoutes(user, db, payout)
	evaluationRoute.EvaluationUserRoutes(user, db)
	forumRoute.ForumUserRoutes(user, db)

	// admin ke atas
	admin := api.Group("/a", authMiddleware.AuthMiddleware(db))
	eventRoute.EventAdminRoutes(admin, db)
	honorRoute.HonorAdminRoutes(admin, db, payout)
	evaluationRoute.EvaluationAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
	materialRoute.MaterialAdminRoutes(admin, db)
	forumRoute.ForumAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)

	// khusus super_admin
	owner := api.Group("/o", authMiddleware.AuthMiddleware(db))
	userRoute.UserOwnerRoutes(owner, db)
	databaseRoute.DatabaseOwnerRoutes(owner, db)
}
