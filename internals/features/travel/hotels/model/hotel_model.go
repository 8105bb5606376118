package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	locationModel "travelku_backend/internals/features/travel/locations/model"
)

// HotelModel represents the hotels table.
type HotelModel struct {
	HotelID          uuid.UUID `gorm:"column:hotel_id;type:uuid;default:gen_random_uuid();primaryKey" json:"hotel_id"`
	HotelLocationID  uuid.UUID `gorm:"column:hotel_location_id;type:uuid;not null" json:"hotel_location_id"`
	HotelName        string    `gorm:"column:hotel_name;size:255;not null" json:"hotel_name"`
	HotelAddress     string    `gorm:"column:hotel_address;type:text;not null" json:"hotel_address"`
	HotelPrice       float64   `gorm:"column:hotel_price;not null" json:"hotel_price"`
	HotelDescription string    `gorm:"column:hotel_description;type:text;not null" json:"hotel_description"`
	HotelImageURL    *string   `gorm:"column:hotel_image_url;type:text" json:"hotel_image_url"`

	HotelCreatedAt time.Time `gorm:"column:hotel_created_at;autoCreateTime" json:"hotel_created_at"`
	HotelUpdatedAt time.Time `gorm:"column:hotel_updated_at;autoUpdateTime" json:"hotel_updated_at"`

	Location *locationModel.LocationModel `gorm:"foreignKey:HotelLocationID" json:"location,omitempty"`
}

func (HotelModel) TableName() string {
	return "hotels"
}

func (h *HotelModel) BeforeCreate(tx *gorm.DB) error {
	if h.HotelID == uuid.Nil {
		h.HotelID = uuid.New()
	}
	return nil
}
