package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"travelku_backend/internals/features/travel/events/model"
	locationDTO "travelku_backend/internals/features/travel/locations/dto"
)

const dateLayout = "2006-01-02"

type EventDTO struct {
	EventID          uuid.UUID                `json:"event_id"`
	EventLocationID  uuid.UUID                `json:"event_location_id"`
	EventTitle       string                   `json:"event_title"`
	EventDescription string                   `json:"event_description"`
	EventStartDate   string                   `json:"event_start_date"`
	EventEndDate     string                   `json:"event_end_date"`
	EventImageURL    *string                  `json:"event_image_url"`
	EventCreatedAt   time.Time                `json:"event_created_at"`
	EventUpdatedAt   time.Time                `json:"event_updated_at"`
	Location         *locationDTO.LocationDTO `json:"location,omitempty"`
}

type EventRequest struct {
	EventLocationID  string `json:"event_location_id" form:"event_location_id" validate:"required,uuid"`
	EventTitle       string `json:"event_title" form:"event_title" validate:"required,max=255"`
	EventDescription string `json:"event_description" form:"event_description" validate:"required"`
	EventStartDate   string `json:"event_start_date" form:"event_start_date" validate:"required,datetime=2006-01-02"`
	EventEndDate     string `json:"event_end_date" form:"event_end_date" validate:"required,datetime=2006-01-02"`
}

func (r EventRequest) Dates() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, r.EventStartDate)
	if err != nil {
		return
	}
	end, err = time.Parse(dateLayout, r.EventEndDate)
	return
}

func ToEventDTO(m model.EventModel) EventDTO {
	out := EventDTO{
		EventID:          m.EventID,
		EventLocationID:  m.EventLocationID,
		EventTitle:       m.EventTitle,
		EventDescription: m.EventDescription,
		EventStartDate:   time.Time(m.EventStartDate).Format(dateLayout),
		EventEndDate:     time.Time(m.EventEndDate).Format(dateLayout),
		EventImageURL:    m.EventImageURL,
		EventCreatedAt:   m.EventCreatedAt,
		EventUpdatedAt:   m.EventUpdatedAt,
	}
	if m.Location != nil {
		l := locationDTO.ToLocationDTO(*m.Location)
		out.Location = &l
	}
	return out
}

// ApplyTo overwrites every validated field (full replace).
func (r EventRequest) ApplyTo(m *model.EventModel, locationID uuid.UUID, start, end time.Time) {
	m.EventLocationID = locationID
	m.EventTitle = r.EventTitle
	m.EventDescription = r.EventDescription
	m.EventStartDate = datatypes.Date(start)
	m.EventEndDate = datatypes.Date(end)
}
