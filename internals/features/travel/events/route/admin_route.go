package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"travelku_backend/internals/features/travel/events/controller"
)

func EventAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	events := api.Group("/events")
	events.Get("/", ctrl.GetAllEvents)
	events.Post("/", ctrl.CreateEvent)
	events.Post("/:id", ctrl.UpdateEvent)
	events.Delete("/:id", ctrl.DeleteEvent)
}
