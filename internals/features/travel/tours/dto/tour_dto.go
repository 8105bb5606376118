package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	locationDTO "travelku_backend/internals/features/travel/locations/dto"
	"travelku_backend/internals/features/travel/tours/model"
)

const dateLayout = "2006-01-02"

// ============================
// Response DTO
// ============================
type TourDTO struct {
	TourID          uuid.UUID                `json:"tour_id"`
	TourLocationID  uuid.UUID                `json:"tour_location_id"`
	TourTitle       string                   `json:"tour_title"`
	TourDescription string                   `json:"tour_description"`
	TourPrice       float64                  `json:"tour_price"`
	TourStartDate   string                   `json:"tour_start_date"`
	TourEndDate     string                   `json:"tour_end_date"`
	TourHighlights  []string                 `json:"tour_highlights"`
	TourImageURL    *string                  `json:"tour_image_url"`
	TourCreatedAt   time.Time                `json:"tour_created_at"`
	TourUpdatedAt   time.Time                `json:"tour_updated_at"`
	Location        *locationDTO.LocationDTO `json:"location,omitempty"`
}

// ============================
// Request DTO
// ============================
type TourRequest struct {
	TourLocationID  string   `json:"tour_location_id" form:"tour_location_id" validate:"required,uuid"`
	TourTitle       string   `json:"tour_title" form:"tour_title" validate:"required,max=255"`
	TourDescription string   `json:"tour_description" form:"tour_description" validate:"required"`
	TourPrice       float64  `json:"tour_price" form:"tour_price" validate:"gte=0"`
	TourStartDate   string   `json:"tour_start_date" form:"tour_start_date" validate:"required,datetime=2006-01-02"`
	TourEndDate     string   `json:"tour_end_date" form:"tour_end_date" validate:"required,datetime=2006-01-02"`
	TourHighlights  []string `json:"tour_highlights" form:"tour_highlights"`
}

// Dates parses the validated date strings. end >= start is the caller's check.
func (r TourRequest) Dates() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, r.TourStartDate)
	if err != nil {
		return
	}
	end, err = time.Parse(dateLayout, r.TourEndDate)
	return
}

func ToTourDTO(m model.TourModel) TourDTO {
	out := TourDTO{
		TourID:          m.TourID,
		TourLocationID:  m.TourLocationID,
		TourTitle:       m.TourTitle,
		TourDescription: m.TourDescription,
		TourPrice:       m.TourPrice,
		TourStartDate:   time.Time(m.TourStartDate).Format(dateLayout),
		TourEndDate:     time.Time(m.TourEndDate).Format(dateLayout),
		TourHighlights:  m.TourHighlights,
		TourImageURL:    m.TourImageURL,
		TourCreatedAt:   m.TourCreatedAt,
		TourUpdatedAt:   m.TourUpdatedAt,
	}
	if m.Location != nil {
		l := locationDTO.ToLocationDTO(*m.Location)
		out.Location = &l
	}
	return out
}

// ApplyTo overwrites every validated field (full replace).
func (r TourRequest) ApplyTo(m *model.TourModel, locationID uuid.UUID, start, end time.Time) {
	m.TourLocationID = locationID
	m.TourTitle = r.TourTitle
	m.TourDescription = r.TourDescription
	m.TourPrice = r.TourPrice
	m.TourStartDate = datatypes.Date(start)
	m.TourEndDate = datatypes.Date(end)
	m.TourHighlights = r.TourHighlights
}
