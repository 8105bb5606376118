package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auth "travelku_backend/internals/middlewares/auth"

	bookingModel "travelku_backend/internals/features/travel/bookings/model"
	"travelku_backend/internals/features/travel/payments/model"
	"travelku_backend/internals/features/travel/payments/service"
	helper "travelku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
	// ServerKey is also used to verify webhook signatures.
	ServerKey string
}

func NewPaymentController(db *gorm.DB, serverKey string) *PaymentController {
	return &PaymentController{DB: db, ServerKey: serverKey}
}

// POST /api/bookings/:id/pay — the booking owner requests a Snap checkout for
// an approved booking. Re-paying an already paid booking is rejected.
func (ctrl *PaymentController) PayBooking(c *fiber.Ctx) error {
	callerID, err := auth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking id")
	}

	var booking bookingModel.BookingModel
	if err := ctrl.DB.
		Preload("User").Preload("Hotel").Preload("Tour").
		First(&booking, "booking_id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Booking not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load booking")
	}

	if booking.BookingUserID != callerID {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only pay for your own bookings")
	}
	if booking.BookingStatus != bookingModel.BookingStatusApproved {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Booking must be approved before payment")
	}

	var paid int64
	if err := ctrl.DB.Model(&model.PaymentModel{}).
		Where("payment_booking_id = ? AND payment_status = ?", bookingID, model.PaymentStatusPaid).
		Count(&paid).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check payment state")
	}
	if paid > 0 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Booking is already paid")
	}

	amount, itemName := bookingCharge(booking)
	if amount <= 0 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Booking has no payable amount")
	}

	payment := model.PaymentModel{
		PaymentBookingID: bookingID,
		PaymentOrderID:   fmt.Sprintf("BK-%s-%d", bookingID.String()[:8], time.Now().Unix()),
		PaymentAmount:    amount,
		PaymentStatus:    model.PaymentStatusInitiated,
	}
	if err := ctrl.DB.Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create payment")
	}

	cust := service.CustomerInput{}
	if booking.User != nil {
		cust.Name = booking.User.UserName
		cust.Email = booking.User.UserEmail
	}

	token, redirectURL, err := service.GenerateSnapToken(payment, cust, itemName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway error")
	}

	return helper.JsonCreated(c, "Payment initiated", fiber.Map{
		"payment_id":   payment.PaymentID,
		"order_id":     payment.PaymentOrderID,
		"amount":       payment.PaymentAmount,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

type midtransNotification struct {
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	FraudStatus       string `json:"fraud_status"`
	SettlementTime    string `json:"settlement_time"`
}

// POST /api/payments/notification — Midtrans webhook.
// Signature is SHA512(order_id + status_code + gross_amount + server key).
func (ctrl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var notif midtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	want := strings.ToLower(notif.SignatureKey)
	raw := notif.OrderID + notif.StatusCode + notif.GrossAmount + ctrl.ServerKey
	if want == "" || sha512sum(raw) != want {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid signature")
	}

	var payment model.PaymentModel
	if err := ctrl.DB.First(&payment, "payment_order_id = ?", notif.OrderID).Error; err != nil {
		// answer 200 so the gateway stops retrying an order we never issued
		log.Printf("[WARN] payment notification for unknown order_id=%s", notif.OrderID)
		return c.JSON(fiber.Map{"status": "ignored", "reason": "payment not found"})
	}

	switch notif.TransactionStatus {
	case "capture", "settlement":
		if notif.FraudStatus == "deny" {
			payment.PaymentStatus = model.PaymentStatusCanceled
			break
		}
		now := time.Now()
		payment.PaymentStatus = model.PaymentStatusPaid
		payment.PaymentPaidAt = &now
	case "expire":
		payment.PaymentStatus = model.PaymentStatusExpired
	case "cancel", "deny", "failure":
		payment.PaymentStatus = model.PaymentStatusCanceled
	default:
		// pending and other intermediate states leave the row as-is
		return c.JSON(fiber.Map{"status": "ok", "payment_status": payment.PaymentStatus})
	}

	if err := ctrl.DB.Save(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update payment")
	}
	return c.JSON(fiber.Map{"status": "ok", "payment_status": payment.PaymentStatus})
}

func bookingCharge(b bookingModel.BookingModel) (int64, string) {
	if b.Hotel != nil {
		return int64(b.Hotel.HotelPrice), b.Hotel.HotelName
	}
	if b.Tour != nil {
		return int64(b.Tour.TourPrice), b.Tour.TourTitle
	}
	return 0, ""
}

func sha512sum(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}
