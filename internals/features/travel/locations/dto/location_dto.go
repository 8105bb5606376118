package dto

import (
	"time"

	"github.com/google/uuid"

	"travelku_backend/internals/features/travel/locations/model"
)

// ============================
// Response DTO
// ============================
type LocationDTO struct {
	LocationID             uuid.UUID `json:"location_id"`
	LocationName           string    `json:"location_name"`
	LocationDescription    string    `json:"location_description"`
	LocationTransportation string    `json:"location_transportation"`
	LocationBookingInfo    string    `json:"location_booking_info"`
	LocationImageURL       *string   `json:"location_image_url"`
	LocationCreatedAt      time.Time `json:"location_created_at"`
	LocationUpdatedAt      time.Time `json:"location_updated_at"`
}

// ============================
// Request DTO (create & update share the full-replace shape)
// ============================
type LocationRequest struct {
	LocationName           string `json:"location_name" form:"location_name" validate:"required,max=255"`
	LocationDescription    string `json:"location_description" form:"location_description" validate:"required"`
	LocationTransportation string `json:"location_transportation" form:"location_transportation" validate:"required"`
	LocationBookingInfo    string `json:"location_booking_info" form:"location_booking_info" validate:"required"`
}

func ToLocationDTO(m model.LocationModel) LocationDTO {
	return LocationDTO{
		LocationID:             m.LocationID,
		LocationName:           m.LocationName,
		LocationDescription:    m.LocationDescription,
		LocationTransportation: m.LocationTransportation,
		LocationBookingInfo:    m.LocationBookingInfo,
		LocationImageURL:       m.LocationImageURL,
		LocationCreatedAt:      m.LocationCreatedAt,
		LocationUpdatedAt:      m.LocationUpdatedAt,
	}
}

func (r LocationRequest) ToModel() model.LocationModel {
	return model.LocationModel{
		LocationName:           r.LocationName,
		LocationDescription:    r.LocationDescription,
		LocationTransportation: r.LocationTransportation,
		LocationBookingInfo:    r.LocationBookingInfo,
	}
}

// ApplyTo overwrites every validated field (full replace, not patch).
func (r LocationRequest) ApplyTo(m *model.LocationModel) {
	m.LocationName = r.LocationName
	m.LocationDescription = r.LocationDescription
	m.LocationTransportation = r.LocationTransportation
	m.LocationBookingInfo = r.LocationBookingInfo
}
