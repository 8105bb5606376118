package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	hotelModel "travelku_backend/internals/features/travel/hotels/model"
	tourModel "travelku_backend/internals/features/travel/tours/model"
	userModel "travelku_backend/internals/features/users/user/model"
)

const (
	BookingStatusPending  = "pending"
	BookingStatusApproved = "approved"
)

// BookingModel represents the bookings table. A booking targets exactly one of
// a hotel or a tour; the XOR is enforced at validation time, not by the schema.
type BookingModel struct {
	BookingID      uuid.UUID  `gorm:"column:booking_id;type:uuid;default:gen_random_uuid();primaryKey" json:"booking_id"`
	BookingUserID  uuid.UUID  `gorm:"column:booking_user_id;type:uuid;not null" json:"booking_user_id"`
	BookingHotelID *uuid.UUID `gorm:"column:booking_hotel_id;type:uuid" json:"booking_hotel_id"`
	BookingTourID  *uuid.UUID `gorm:"column:booking_tour_id;type:uuid" json:"booking_tour_id"`
	BookingStatus  string     `gorm:"column:booking_status;type:varchar(20);not null;default:'pending'" json:"booking_status"`

	BookingCreatedAt time.Time `gorm:"column:booking_created_at;autoCreateTime" json:"booking_created_at"`
	BookingUpdatedAt time.Time `gorm:"column:booking_updated_at;autoUpdateTime" json:"booking_updated_at"`

	User  *userModel.UserModel   `gorm:"foreignKey:BookingUserID" json:"user,omitempty"`
	Hotel *hotelModel.HotelModel `gorm:"foreignKey:BookingHotelID" json:"hotel,omitempty"`
	Tour  *tourModel.TourModel   `gorm:"foreignKey:BookingTourID" json:"tour,omitempty"`
}

func (BookingModel) TableName() string {
	return "bookings"
}

func (b *BookingModel) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == uuid.Nil {
		b.BookingID = uuid.New()
	}
	if b.BookingStatus == "" {
		b.BookingStatus = BookingStatusPending
	}
	return nil
}
