package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"travelku_backend/internals/features/travel/bookings/controller"
)

// BookingUserRoutes mounts booking endpoints available to any signed-in user.
func BookingUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBookingUserController(db)

	r.Get("/my-bookings", ctrl.GetMyBookings)
	r.Post("/api/bookings", ctrl.CreateBooking)
	r.Delete("/api/bookings/:id", ctrl.DeleteBooking)
}
