package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelku_backend/internals/features/travel/bookings/dto"
	"travelku_backend/internals/features/travel/bookings/service"
	helper "travelku_backend/internals/helpers"
)

type BookingAdminController struct {
	Service *service.BookingService
}

func NewBookingAdminController(db *gorm.DB) *BookingAdminController {
	return &BookingAdminController{Service: service.NewBookingService(db)}
}

// GET /api/admin/bookings
func (ctrl *BookingAdminController) GetAllBookings(c *fiber.Ctx) error {
	bookings, err := ctrl.Service.ListAll()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve bookings")
	}
	return helper.JsonOK(c, "", dto.ToBookingDTOs(bookings))
}

// GET /admin/bookings/pending
func (ctrl *BookingAdminController) GetPendingBookings(c *fiber.Ctx) error {
	bookings, err := ctrl.Service.ListPending()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve pending bookings")
	}
	return helper.JsonOK(c, "", dto.ToBookingDTOs(bookings))
}

// PUT /admin/bookings/:id/approve and POST /api/admin/bookings/:id/approve
func (ctrl *BookingAdminController) ApproveBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking id")
	}

	booking, err := ctrl.Service.Approve(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Booking not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve booking")
	}
	return helper.JsonUpdated(c, "Booking approved", dto.ToBookingDTO(booking))
}

// DELETE /admin/bookings/:id and DELETE /api/admin/bookings/:id
func (ctrl *BookingAdminController) DeleteBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking id")
	}

	if err := ctrl.Service.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Booking not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete booking")
	}
	return helper.JsonDeleted(c, "Booking deleted", fiber.Map{"booking_id": id})
}
