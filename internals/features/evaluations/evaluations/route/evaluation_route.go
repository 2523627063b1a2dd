package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wasitku_backend/internals/constants"
	evaluationController "wasitku_backend/internals/features/evaluations/evaluations/controller"
	authMiddleware "wasitku_backend/internals/middlewares/auth"
)

func EvaluationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := evaluationController.NewEvaluationController(db)

	ev := r.Group("/evaluations")
	ev.Post("/", ctl.CreateEvaluation)
	ev.Get("/", ctl.ListEvaluations)
	ev.Get("/:id", ctl.GetEvaluation)
	ev.Put("/:id/scores", ctl.UpsertScores)
	ev.Post("/:id/submit", ctl.SubmitEvaluation)

	r.Get("/evaluation-criteria", ctl.ListCriteria)
}

func EvaluationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := evaluationController.NewEvaluationController(db)

	ev := r.Group("/evaluations",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("review evaluasi"), constants.AdminAndAbove...),
	)
	ev.Post("/:id/review", ctl.ReviewEvaluation)
}
