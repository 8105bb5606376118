package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"travelku_backend/internals/features/users/auth/controller"
	"travelku_backend/internals/middlewares"
)

// AuthRoutes mounts the public authentication endpoints with per-route rate
// limits. Logout sits here too; it only clears cookies.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	r.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	r.Post("/logout", ctrl.Logout)
	r.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)
}
