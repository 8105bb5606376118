package dto

import (
	"time"

	"github.com/google/uuid"

	"travelku_backend/internals/features/travel/bookings/model"
	hotelDTO "travelku_backend/internals/features/travel/hotels/dto"
	tourDTO "travelku_backend/internals/features/travel/tours/dto"
)

// ============================
// Response DTO
// ============================
type BookingOwnerDTO struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
}

type BookingDTO struct {
	BookingID        uuid.UUID          `json:"booking_id"`
	BookingUserID    uuid.UUID          `json:"booking_user_id"`
	BookingHotelID   *uuid.UUID         `json:"booking_hotel_id"`
	BookingTourID    *uuid.UUID         `json:"booking_tour_id"`
	BookingStatus    string             `json:"booking_status"`
	BookingCreatedAt time.Time          `json:"booking_created_at"`
	User             *BookingOwnerDTO   `json:"user,omitempty"`
	Hotel            *hotelDTO.HotelDTO `json:"hotel,omitempty"`
	Tour             *tourDTO.TourDTO   `json:"tour,omitempty"`
}

// ============================
// Create Request DTO
// ============================
type CreateBookingRequest struct {
	BookingHotelID *string `json:"hotel_id" form:"hotel_id" validate:"omitempty,uuid"`
	BookingTourID  *string `json:"tour_id" form:"tour_id" validate:"omitempty,uuid"`
}

func ToBookingDTO(m model.BookingModel) BookingDTO {
	out := BookingDTO{
		BookingID:        m.BookingID,
		BookingUserID:    m.BookingUserID,
		BookingHotelID:   m.BookingHotelID,
		BookingTourID:    m.BookingTourID,
		BookingStatus:    m.BookingStatus,
		BookingCreatedAt: m.BookingCreatedAt,
	}
	if m.User != nil {
		out.User = &BookingOwnerDTO{
			UserID:    m.User.UserID,
			UserName:  m.User.UserName,
			UserEmail: m.User.UserEmail,
		}
	}
	if m.Hotel != nil {
		h := hotelDTO.ToHotelDTO(*m.Hotel)
		out.Hotel = &h
	}
	if m.Tour != nil {
		t := tourDTO.ToTourDTO(*m.Tour)
		out.Tour = &t
	}
	return out
}

func ToBookingDTOs(ms []model.BookingModel) []BookingDTO {
	out := make([]BookingDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToBookingDTO(m))
	}
	return out
}
