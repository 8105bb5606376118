package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"travelku_backend/internals/features/travel/tours/controller"
)

func TourAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTourController(db)

	tours := api.Group("/tours")
	tours.Get("/", ctrl.GetAllTours)
	tours.Post("/", ctrl.CreateTour)
	tours.Post("/:id", ctrl.UpdateTour)
	tours.Delete("/:id", ctrl.DeleteTour)
}
