package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"travelku_backend/internals/features/travel/hotels/controller"
)

func HotelAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHotelController(db)

	hotels := api.Group("/hotels")
	hotels.Get("/", ctrl.GetAllHotels)
	hotels.Post("/", ctrl.CreateHotel)
	hotels.Post("/:id", ctrl.UpdateHotel)
	hotels.Delete("/:id", ctrl.DeleteHotel)
}
