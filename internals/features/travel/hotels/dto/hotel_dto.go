package dto

import (
	"time"

	"github.com/google/uuid"

	"travelku_backend/internals/features/travel/hotels/model"
	locationDTO "travelku_backend/internals/features/travel/locations/dto"
)

// ============================
// Response DTO
// ============================
type HotelDTO struct {
	HotelID          uuid.UUID                 `json:"hotel_id"`
	HotelLocationID  uuid.UUID                 `json:"hotel_location_id"`
	HotelName        string                    `json:"hotel_name"`
	HotelAddress     string                    `json:"hotel_address"`
	HotelPrice       float64                   `json:"hotel_price"`
	HotelDescription string                    `json:"hotel_description"`
	HotelImageURL    *string                   `json:"hotel_image_url"`
	HotelCreatedAt   time.Time                 `json:"hotel_created_at"`
	HotelUpdatedAt   time.Time                 `json:"hotel_updated_at"`
	Location         *locationDTO.LocationDTO  `json:"location,omitempty"`
}

// ============================
// Request DTO
// ============================
type HotelRequest struct {
	HotelLocationID  string  `json:"hotel_location_id" form:"hotel_location_id" validate:"required,uuid"`
	HotelName        string  `json:"hotel_name" form:"hotel_name" validate:"required,max=255"`
	HotelAddress     string  `json:"hotel_address" form:"hotel_address" validate:"required"`
	HotelPrice       float64 `json:"hotel_price" form:"hotel_price" validate:"gte=0"`
	HotelDescription string  `json:"hotel_description" form:"hotel_description" validate:"required"`
}

func ToHotelDTO(m model.HotelModel) HotelDTO {
	out := HotelDTO{
		HotelID:          m.HotelID,
		HotelLocationID:  m.HotelLocationID,
		HotelName:        m.HotelName,
		HotelAddress:     m.HotelAddress,
		HotelPrice:       m.HotelPrice,
		HotelDescription: m.HotelDescription,
		HotelImageURL:    m.HotelImageURL,
		HotelCreatedAt:   m.HotelCreatedAt,
		HotelUpdatedAt:   m.HotelUpdatedAt,
	}
	if m.Location != nil {
		l := locationDTO.ToLocationDTO(*m.Location)
		out.Location = &l
	}
	return out
}

// ApplyTo overwrites every validated field (full replace).
func (r HotelRequest) ApplyTo(m *model.HotelModel, locationID uuid.UUID) {
	m.HotelLocationID = locationID
	m.HotelName = r.HotelName
	m.HotelAddress = r.HotelAddress
	m.HotelPrice = r.HotelPrice
	m.HotelDescription = r.HotelDescription
}
