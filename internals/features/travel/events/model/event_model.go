package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	locationModel "travelku_backend/internals/features/travel/locations/model"
)

// EventModel represents the events table.
type EventModel struct {
	EventID          uuid.UUID      `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventLocationID  uuid.UUID      `gorm:"column:event_location_id;type:uuid;not null" json:"event_location_id"`
	EventTitle       string         `gorm:"column:event_title;size:255;not null" json:"event_title"`
	EventDescription string         `gorm:"column:event_description;type:text;not null" json:"event_description"`
	EventStartDate   datatypes.Date `gorm:"column:event_start_date;not null" json:"event_start_date"`
	EventEndDate     datatypes.Date `gorm:"column:event_end_date;not null" json:"event_end_date"`
	EventImageURL    *string        `gorm:"column:event_image_url;type:text" json:"event_image_url"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`

	Location *locationModel.LocationModel `gorm:"foreignKey:EventLocationID" json:"location,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}

func (e *EventModel) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	return nil
}
