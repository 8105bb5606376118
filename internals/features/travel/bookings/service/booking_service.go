package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelku_backend/internals/features/travel/bookings/model"
	hotelModel "travelku_backend/internals/features/travel/hotels/model"
	tourModel "travelku_backend/internals/features/travel/tours/model"
)

// ValidationError carries a field → messages map up to the request boundary.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string { return "validation failed" }

func fieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {msg}}}
}

// BookingService implements the booking moderation workflow. Every call takes
// the caller identity explicitly; nothing is read from ambient request state.
//
// There is deliberately no locking around the status writes: two concurrent
// approve/delete calls race at the storage layer and the last write wins.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Create makes a pending booking for the caller. Exactly one of hotelID /
// tourID must be set and must reference an existing row.
func (s *BookingService) Create(callerID uuid.UUID, hotelID, tourID *uuid.UUID) (model.BookingModel, error) {
	if (hotelID == nil) == (tourID == nil) {
		return model.BookingModel{}, fieldError("booking_target", "exactly one of hotel_id or tour_id must be set.")
	}

	if hotelID != nil {
		var count int64
		if err := s.DB.Model(&hotelModel.HotelModel{}).
			Where("hotel_id = ?", *hotelID).Count(&count).Error; err != nil {
			return model.BookingModel{}, err
		}
		if count == 0 {
			return model.BookingModel{}, fieldError("hotel_id", "referenced hotel does not exist.")
		}
	}
	if tourID != nil {
		var count int64
		if err := s.DB.Model(&tourModel.TourModel{}).
			Where("tour_id = ?", *tourID).Count(&count).Error; err != nil {
			return model.BookingModel{}, err
		}
		if count == 0 {
			return model.BookingModel{}, fieldError("tour_id", "referenced tour does not exist.")
		}
	}

	booking := model.BookingModel{
		BookingUserID:  callerID,
		BookingHotelID: hotelID,
		BookingTourID:  tourID,
		BookingStatus:  model.BookingStatusPending,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return model.BookingModel{}, err
	}
	return booking, nil
}

// ListAll returns every booking with owner and target joined, newest-first.
func (s *BookingService) ListAll() ([]model.BookingModel, error) {
	var bookings []model.BookingModel
	err := s.DB.
		Preload("User").Preload("Hotel").Preload("Tour").
		Order("booking_created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// ListPending returns pending bookings, newest-first.
func (s *BookingService) ListPending() ([]model.BookingModel, error) {
	var bookings []model.BookingModel
	err := s.DB.
		Preload("User").Preload("Hotel").Preload("Tour").
		Where("booking_status = ?", model.BookingStatusPending).
		Order("booking_created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// ListMine returns the caller's bookings with targets joined, newest-first.
func (s *BookingService) ListMine(callerID uuid.UUID) ([]model.BookingModel, error) {
	var bookings []model.BookingModel
	err := s.DB.
		Preload("Hotel").Preload("Tour").
		Where("booking_user_id = ?", callerID).
		Order("booking_created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// Get loads one booking with owner and target joined.
func (s *BookingService) Get(id uuid.UUID) (model.BookingModel, error) {
	var booking model.BookingModel
	err := s.DB.
		Preload("User").Preload("Hotel").Preload("Tour").
		First(&booking, "booking_id = ?", id).Error
	return booking, err
}

// Approve flips the booking to approved. The write is unconditional, so
// approving an already-approved booking succeeds (idempotent).
func (s *BookingService) Approve(id uuid.UUID) (model.BookingModel, error) {
	var booking model.BookingModel
	if err := s.DB.First(&booking, "booking_id = ?", id).Error; err != nil {
		return model.BookingModel{}, err
	}
	booking.BookingStatus = model.BookingStatusApproved
	if err := s.DB.Save(&booking).Error; err != nil {
		return model.BookingModel{}, err
	}
	return booking, nil
}

// Delete removes the booking permanently. Bookings own no files, so there is
// no storage cleanup.
func (s *BookingService) Delete(id uuid.UUID) error {
	var booking model.BookingModel
	if err := s.DB.First(&booking, "booking_id = ?", id).Error; err != nil {
		return err
	}
	return s.DB.Delete(&model.BookingModel{}, "booking_id = ?", id).Error
}
