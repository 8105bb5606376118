package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auth "travelku_backend/internals/middlewares/auth"

	"travelku_backend/internals/features/travel/bookings/dto"
	"travelku_backend/internals/features/travel/bookings/service"
	helper "travelku_backend/internals/helpers"
)

type BookingUserController struct {
	Service *service.BookingService
}

func NewBookingUserController(db *gorm.DB) *BookingUserController {
	return &BookingUserController{Service: service.NewBookingService(db)}
}

// POST /api/bookings
func (ctrl *BookingUserController) CreateBooking(c *fiber.Ctx) error {
	callerID, err := auth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	hotelID, tourID, fieldErrs := parseTargetIDs(req)
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	booking, err := ctrl.Service.Create(callerID, hotelID, tourID)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return helper.JsonValidationError(c, verr.Fields)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create booking")
	}
	return helper.JsonCreated(c, "Booking created", dto.ToBookingDTO(booking))
}

// GET /my-bookings
func (ctrl *BookingUserController) GetMyBookings(c *fiber.Ctx) error {
	callerID, err := auth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	bookings, err := ctrl.Service.ListMine(callerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve bookings")
	}
	return helper.JsonOK(c, "", dto.ToBookingDTOs(bookings))
}

// DELETE /api/bookings/:id — owners may cancel their own booking, admins any.
func (ctrl *BookingUserController) DeleteBooking(c *fiber.Ctx) error {
	callerID, err := auth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking id")
	}

	booking, err := ctrl.Service.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Booking not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve booking")
	}

	if booking.BookingUserID != callerID && !auth.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only delete your own bookings")
	}

	if err := ctrl.Service.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Booking not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete booking")
	}
	return helper.JsonDeleted(c, "Booking deleted", fiber.Map{"booking_id": id})
}

// parseTargetIDs converts the optional string ids from the request body. The
// XOR rule itself lives in the service.
func parseTargetIDs(req dto.CreateBookingRequest) (hotelID, tourID *uuid.UUID, fieldErrs map[string][]string) {
	if req.BookingHotelID != nil {
		id, err := uuid.Parse(*req.BookingHotelID)
		if err != nil {
			return nil, nil, helper.FieldError("hotel_id", "must be a valid uuid.")
		}
		hotelID = &id
	}
	if req.BookingTourID != nil {
		id, err := uuid.Parse(*req.BookingTourID)
		if err != nil {
			return nil, nil, helper.FieldError("tour_id", "must be a valid uuid.")
		}
		tourID = &id
	}
	return hotelID, tourID, nil
}
