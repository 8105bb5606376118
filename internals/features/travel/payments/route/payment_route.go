package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"travelku_backend/internals/configs"
	"travelku_backend/internals/features/travel/payments/controller"
)

// PaymentUserRoutes mounts the booking checkout endpoint for signed-in users.
func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db, configs.GetEnv("MIDTRANS_SERVER_KEY"))

	r.Post("/api/bookings/:id/pay", ctrl.PayBooking)
}

// PaymentWebhookRoutes mounts the gateway callback. It must stay public:
// Midtrans authenticates with a signature, not a session.
func PaymentWebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db, configs.GetEnv("MIDTRANS_SERVER_KEY"))

	r.Post("/api/payments/notification", ctrl.HandleNotification)
}
