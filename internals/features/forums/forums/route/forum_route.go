package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wasitku_backend/internals/constants"
	forumController "wasitku_backend/internals/features/forums/forums/controller"
	authMiddleware "wasitku_backend/internals/middlewares/auth"
)

func ForumUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := forumController.NewForumController(db)

	fr := r.Group("/forum")
	fr.Get("/threads", ctl.ListThreads)
	fr.Post("/threads", ctl.CreateThread)
	fr.Get("/threads/:id", ctl.GetThread)
	fr.Post("/threads/:id/posts", ctl.CreatePost)
	fr.Delete("/posts/:id", ctl.DeletePost)
}

func ForumAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := forumController.NewForumController(db)

	fr := r.Group("/forum",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("moderasi forum"), constants.AdminAndAbove...),
	)
	fr.Post("/threads/:id/pin", ctl.SetThreadPinned(true))
	fr.Post("/threads/:id/unpin", ctl.SetThreadPinned(false))
	fr.Post("/threads/:id/lock", ctl.SetThreadLocked(true))
	fr.Post("/threads/:id/unlock", ctl.SetThreadLocked(false))
}
