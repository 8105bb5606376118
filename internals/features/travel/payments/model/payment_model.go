package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingModel "travelku_backend/internals/features/travel/bookings/model"
)

const (
	PaymentStatusInitiated = "initiated"
	PaymentStatusPaid      = "paid"
	PaymentStatusExpired   = "expired"
	PaymentStatusCanceled  = "canceled"
)

// PaymentModel tracks Midtrans Snap transactions for bookings.
type PaymentModel struct {
	PaymentID        uuid.UUID  `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentBookingID uuid.UUID  `gorm:"column:payment_booking_id;type:uuid;not null" json:"payment_booking_id"`
	PaymentOrderID   string     `gorm:"column:payment_order_id;size:64;uniqueIndex;not null" json:"payment_order_id"`
	PaymentAmount    int64      `gorm:"column:payment_amount;not null" json:"payment_amount"`
	PaymentStatus    string     `gorm:"column:payment_status;type:varchar(20);not null;default:'initiated'" json:"payment_status"`
	PaymentPaidAt    *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`

	Booking *bookingModel.BookingModel `gorm:"foreignKey:PaymentBookingID" json:"booking,omitempty"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func (p *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if p.PaymentID == uuid.Nil {
		p.PaymentID = uuid.New()
	}
	return nil
}
