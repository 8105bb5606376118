package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	locationModel "travelku_backend/internals/features/travel/locations/model"
)

// TourModel represents the tours table. tour_end_date >= tour_start_date is
// enforced at validation time.
type TourModel struct {
	TourID          uuid.UUID      `gorm:"column:tour_id;type:uuid;default:gen_random_uuid();primaryKey" json:"tour_id"`
	TourLocationID  uuid.UUID      `gorm:"column:tour_location_id;type:uuid;not null" json:"tour_location_id"`
	TourTitle       string         `gorm:"column:tour_title;size:255;not null" json:"tour_title"`
	TourDescription string         `gorm:"column:tour_description;type:text;not null" json:"tour_description"`
	TourPrice       float64        `gorm:"column:tour_price;not null" json:"tour_price"`
	TourStartDate   datatypes.Date `gorm:"column:tour_start_date;not null" json:"tour_start_date"`
	TourEndDate     datatypes.Date `gorm:"column:tour_end_date;not null" json:"tour_end_date"`
	TourHighlights  pq.StringArray `gorm:"column:tour_highlights;type:text[]" json:"tour_highlights"`
	TourImageURL    *string        `gorm:"column:tour_image_url;type:text" json:"tour_image_url"`

	TourCreatedAt time.Time `gorm:"column:tour_created_at;autoCreateTime" json:"tour_created_at"`
	TourUpdatedAt time.Time `gorm:"column:tour_updated_at;autoUpdateTime" json:"tour_updated_at"`

	Location *locationModel.LocationModel `gorm:"foreignKey:TourLocationID" json:"location,omitempty"`
}

func (TourModel) TableName() string {
	return "tours"
}

func (t *TourModel) BeforeCreate(tx *gorm.DB) error {
	if t.TourID == uuid.Nil {
		t.TourID = uuid.New()
	}
	return nil
}
