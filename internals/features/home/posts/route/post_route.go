package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"travelku_backend/internals/constants"
	"travelku_backend/internals/features/home/posts/controller"
	"travelku_backend/internals/middlewares/auth"
)

// PostUserRoutes mounts the post endpoints for signed-in users, plus the
// moderation endpoints that the legacy frontend calls outside /api/admin.
func PostUserRoutes(r fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewPostUserController(db)
	adminCtrl := controller.NewPostAdminController(db)

	r.Get("/posts", userCtrl.GetApprovedPosts)
	r.Post("/posts", userCtrl.CreatePost)
	r.Delete("/posts/:id", userCtrl.DeletePost)
	r.Get("/user/posts", userCtrl.GetMyPosts)

	moderators := auth.OnlyRoles(constants.RoleErrorAdmin("post moderation"), constants.RoleAdmin)
	r.Get("/posts/pending", moderators, adminCtrl.GetPendingPosts)
	r.Get("/api/posts/:id", moderators, adminCtrl.GetPost)
	// approve answers PUT and POST so form-only clients can moderate
	r.Put("/api/posts/:id/approve", moderators, adminCtrl.ApprovePost)
	r.Post("/api/posts/:id/approve", moderators, adminCtrl.ApprovePost)
	r.Delete("/api/posts/:id", moderators, adminCtrl.DeletePost)
}

// PostAdminRoutes mounts the post CRUD under the admin prefix.
func PostAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPostAdminController(db)

	posts := r.Group("/posts")
	posts.Get("/", ctrl.GetAllPosts)
	posts.Post("/", ctrl.CreatePost)
	posts.Get("/:id", ctrl.GetPost)
	posts.Post("/:id/approve", ctrl.ApprovePost)
	posts.Delete("/:id", ctrl.DeletePost)
}
