package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"travelku_backend/internals/features/travel/locations/controller"
)

func LocationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLocationController(db)

	locations := api.Group("/locations")
	locations.Get("/", ctrl.GetAllLocations)
	locations.Post("/", ctrl.CreateLocation)
	locations.Post("/:id", ctrl.UpdateLocation) // update uses POST, not PUT
	locations.Delete("/:id", ctrl.DeleteLocation)
}
