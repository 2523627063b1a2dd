package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wasitku_backend/internals/constants"
	eventController "wasitku_backend/internals/features/events/events/controller"
	authMiddleware "wasitku_backend/internals/middlewares/auth"
)

/*
Routes event:
- /api/u/events        → wajib login (wasit/admin): ajukan + baca
- /api/a/events        → admin ke atas: approve/reject/complete + penugasan
*/
func EventUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := eventController.NewEventController(db)

	ev := r.Group("/events")
	ev.Post("/", ctl.CreateEvent)
	ev.Get("/", ctl.ListEvents)
	ev.Get("/:id", ctl.GetEventByID)
	ev.Get("/:id/approvals", ctl.ListApprovals)
	ev.Get("/:id/assignments", ctl.ListAssignments)
}

func EventAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := eventController.NewEventController(db)

	ev := r.Group("/events",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("persetujuan event"), constants.AdminAndAbove...),
	)
	ev.Post("/:id/approve", ctl.ApproveEvent)
	ev.Post("/:id/reject", ctl.RejectEvent)
	ev.Post("/:id/complete", ctl.CompleteEvent)
	ev.Post("/:id/assignments", ctl.AssignWasit)
	ev.Delete("/:id/assignments/:assignment_id", ctl.RemoveAssignment)
}
