package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationModel represents the locations table. Hotels, tours and posts
// reference it.
type LocationModel struct {
	LocationID             uuid.UUID `gorm:"column:location_id;type:uuid;default:gen_random_uuid();primaryKey" json:"location_id"`
	LocationName           string    `gorm:"column:location_name;size:255;not null" json:"location_name"`
	LocationDescription    string    `gorm:"column:location_description;type:text;not null" json:"location_description"`
	LocationTransportation string    `gorm:"column:location_transportation;type:text;not null" json:"location_transportation"`
	LocationBookingInfo    string    `gorm:"column:location_booking_info;type:text;not null" json:"location_booking_info"`
	LocationImageURL       *string   `gorm:"column:location_image_url;type:text" json:"location_image_url"`

	LocationCreatedAt time.Time `gorm:"column:location_created_at;autoCreateTime" json:"location_created_at"`
	LocationUpdatedAt time.Time `gorm:"column:location_updated_at;autoUpdateTime" json:"location_updated_at"`
}

func (LocationModel) TableName() string {
	return "locations"
}

func (l *LocationModel) BeforeCreate(tx *gorm.DB) error {
	if l.LocationID == uuid.Nil {
		l.LocationID = uuid.New()
	}
	return nil
}
