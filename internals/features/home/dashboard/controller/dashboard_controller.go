package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	postModel "travelku_backend/internals/features/home/posts/model"
	bookingModel "travelku_backend/internals/features/travel/bookings/model"
	eventModel "travelku_backend/internals/features/travel/events/model"
	hotelModel "travelku_backend/internals/features/travel/hotels/model"
	locationModel "travelku_backend/internals/features/travel/locations/model"
	tourModel "travelku_backend/internals/features/travel/tours/model"
	userModel "travelku_backend/internals/features/users/user/model"
	helper "travelku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /admin/stats — entity counts for the admin dashboard.
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	counts := map[string]any{}

	tables := []struct {
		key   string
		model any
	}{
		{"users", &userModel.UserModel{}},
		{"locations", &locationModel.LocationModel{}},
		{"hotels", &hotelModel.HotelModel{}},
		{"tours", &tourModel.TourModel{}},
		{"events", &eventModel.EventModel{}},
		{"posts", &postModel.PostModel{}},
		{"bookings", &bookingModel.BookingModel{}},
	}
	for _, t := range tables {
		var n int64
		if err := ctrl.DB.Model(t.model).Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
		}
		counts[t.key] = n
	}

	var pendingBookings, pendingPosts int64
	if err := ctrl.DB.Model(&bookingModel.BookingModel{}).
		Where("booking_status = ?", bookingModel.BookingStatusPending).
		Count(&pendingBookings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if err := ctrl.DB.Model(&postModel.PostModel{}).
		Where("post_status = ?", postModel.PostStatusPending).
		Count(&pendingPosts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	counts["pending_bookings"] = pendingBookings
	counts["pending_posts"] = pendingPosts

	return helper.JsonOK(c, "", counts)
}
