package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"travelku_backend/internals/features/travel/bookings/controller"
)

// BookingAdminRoutes mounts the moderation endpoints. The caller is expected
// to have applied the admin role gate already.
func BookingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBookingAdminController(db)

	bookings := r.Group("/bookings")
	bookings.Get("/", ctrl.GetAllBookings)
	bookings.Get("/pending", ctrl.GetPendingBookings)
	bookings.Put("/:id/approve", ctrl.ApproveBooking)
	// approve also answers POST so form-only clients can moderate
	bookings.Post("/:id/approve", ctrl.ApproveBooking)
	bookings.Delete("/:id", ctrl.DeleteBooking)
}
