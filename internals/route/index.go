package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"travelku_backend/internals/constants"
	"travelku_backend/internals/middlewares/auth"

	dashboardController "travelku_backend/internals/features/home/dashboard/controller"
	postRoute "travelku_backend/internals/features/home/posts/route"
	bookingRoute "travelku_backend/internals/features/travel/bookings/route"
	eventRoute "travelku_backend/internals/features/travel/events/route"
	hotelRoute "travelku_backend/internals/features/travel/hotels/route"
	locationRoute "travelku_backend/internals/features/travel/locations/route"
	paymentRoute "travelku_backend/internals/features/travel/payments/route"
	tourRoute "travelku_backend/internals/features/travel/tours/route"
	authRoute "travelku_backend/internals/features/users/auth/route"
	userRoute "travelku_backend/internals/features/users/user/route"
)

// SetupRoutes wires the whole HTTP surface:
//
//	public      — auth endpoints and the payment gateway webhook
//	authenticated — profile, posts, bookings, checkout
//	/admin      — dashboard and booking moderation, admin role required
//	/api/admin  — entity CRUD, admin role required
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ---- public ----
	authRoute.AuthRoutes(app, db)
	paymentRoute.PaymentWebhookRoutes(app, db)

	// ---- admin: dashboard & booking moderation ----
	admin := app.Group("/admin",
		auth.AuthMiddleware(db),
		auth.OnlyRoles(constants.RoleErrorAdmin("the admin dashboard"), constants.RoleAdmin),
	)
	dashboard := dashboardController.NewDashboardController(db)
	admin.Get("/stats", dashboard.GetStats)
	bookingRoute.BookingAdminRoutes(admin, db)

	// ---- admin: entity CRUD ----
	adminAPI := app.Group("/api/admin",
		auth.AuthMiddleware(db),
		auth.OnlyRoles(constants.RoleErrorAdmin("the admin API"), constants.RoleAdmin),
	)
	userRoute.UserAdminRoutes(adminAPI, db)
	locationRoute.LocationAdminRoutes(adminAPI, db)
	hotelRoute.HotelAdminRoutes(adminAPI, db)
	tourRoute.TourAdminRoutes(adminAPI, db)
	eventRoute.EventAdminRoutes(adminAPI, db)
	postRoute.PostAdminRoutes(adminAPI, db)
	bookingRoute.BookingAdminRoutes(adminAPI, db)

	// ---- signed-in users ----
	// registered last so the admin groups above match first
	authed := app.Group("/", auth.AuthMiddleware(db))
	userRoute.ProfileRoutes(authed, db)
	postRoute.PostUserRoutes(authed, db)
	bookingRoute.BookingUserRoutes(authed, db)
	paymentRoute.PaymentUserRoutes(authed, db)
}
