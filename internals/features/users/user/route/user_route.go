package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"travelku_backend/internals/features/users/user/controller"
)

// UserAdminRoutes mounts the account CRUD under the admin prefix.
// update uses POST, not PUT
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserAdminController(db)

	users := r.Group("/users")
	users.Get("/", ctrl.GetAllUsers)
	users.Get("/:id", ctrl.GetUser)
	users.Post("/", ctrl.CreateUser)
	users.Post("/:id", ctrl.UpdateUser)
	users.Delete("/:id", ctrl.DeleteUser)
}

// ProfileRoutes mounts the self-service endpoints for signed-in users.
func ProfileRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfileController(db)

	r.Get("/api/user", ctrl.GetProfile)
	r.Get("/profile", ctrl.GetProfile)
	r.Post("/profile", ctrl.UpdateProfile)
	r.Post("/change-password", ctrl.ChangePassword)
}
