package controller

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"travelku_backend/internals/features/travel/payments/model"
)

const paymentsSchema = `CREATE TABLE payments (
	payment_id text PRIMARY KEY,
	payment_booking_id text NOT NULL,
	payment_order_id text NOT NULL UNIQUE,
	payment_amount integer NOT NULL,
	payment_status text NOT NULL DEFAULT 'initiated',
	payment_paid_at datetime,
	payment_created_at datetime,
	payment_updated_at datetime
)`

const testServerKey = "SB-Mid-server-test"

func newWebhookApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(paymentsSchema).Error)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	ctrl := NewPaymentController(db, testServerKey)
	app.Post("/api/payments/notification", ctrl.HandleNotification)
	return app, db
}

func seedPayment(t *testing.T, db *gorm.DB, orderID string) model.PaymentModel {
	t.Helper()
	p := model.PaymentModel{
		PaymentBookingID: uuid.New(),
		PaymentOrderID:   orderID,
		PaymentAmount:    199,
		PaymentStatus:    model.PaymentStatusInitiated,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

// notify posts a webhook payload and returns the response status. When sign
// is true the signature_key is computed the way Midtrans does.
func notify(t *testing.T, app *fiber.App, payload map[string]string, sign bool) int {
	t.Helper()
	if sign {
		payload["signature_key"] = sha512sum(
			payload["order_id"] + payload["status_code"] + payload["gross_amount"] + testServerKey,
		)
	}
	raw, err := sonic.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/payments/notification", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestNotificationRejectsBadSignature(t *testing.T) {
	app, db := newWebhookApp(t)
	p := seedPayment(t, db, "BK-test-1")

	status := notify(t, app, map[string]string{
		"order_id":           p.PaymentOrderID,
		"status_code":        "200",
		"gross_amount":       "199.00",
		"transaction_status": "settlement",
		"signature_key":      "deadbeef",
	}, false)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	var after model.PaymentModel
	require.NoError(t, db.First(&after, "payment_order_id = ?", p.PaymentOrderID).Error)
	assert.Equal(t, model.PaymentStatusInitiated, after.PaymentStatus)
}

func TestNotificationSettlementMarksPaid(t *testing.T) {
	app, db := newWebhookApp(t)
	p := seedPayment(t, db, "BK-test-2")

	status := notify(t, app, map[string]string{
		"order_id":           p.PaymentOrderID,
		"status_code":        "200",
		"gross_amount":       "199.00",
		"transaction_status": "settlement",
	}, true)
	require.Equal(t, fiber.StatusOK, status)

	var after model.PaymentModel
	require.NoError(t, db.First(&after, "payment_order_id = ?", p.PaymentOrderID).Error)
	assert.Equal(t, model.PaymentStatusPaid, after.PaymentStatus)
	assert.NotNil(t, after.PaymentPaidAt)
}

func TestNotificationCaptureFraudDenyCancels(t *testing.T) {
	app, db := newWebhookApp(t)
	p := seedPayment(t, db, "BK-test-3")

	status := notify(t, app, map[string]string{
		"order_id":           p.PaymentOrderID,
		"status_code":        "200",
		"gross_amount":       "199.00",
		"transaction_status": "capture",
		"fraud_status":       "deny",
	}, true)
	require.Equal(t, fiber.StatusOK, status)

	var after model.PaymentModel
	require.NoError(t, db.First(&after, "payment_order_id = ?", p.PaymentOrderID).Error)
	assert.Equal(t, model.PaymentStatusCanceled, after.PaymentStatus)
	assert.Nil(t, after.PaymentPaidAt)
}

func TestNotificationExpireMarksExpired(t *testing.T) {
	app, db := newWebhookApp(t)
	p := seedPayment(t, db, "BK-test-4")

	status := notify(t, app, map[string]string{
		"order_id":           p.PaymentOrderID,
		"status_code":        "407",
		"gross_amount":       "199.00",
		"transaction_status": "expire",
	}, true)
	require.Equal(t, fiber.StatusOK, status)

	var after model.PaymentModel
	require.NoError(t, db.First(&after, "payment_order_id = ?", p.PaymentOrderID).Error)
	assert.Equal(t, model.PaymentStatusExpired, after.PaymentStatus)
}

// unknown orders still answer 200 so the gateway stops retrying
func TestNotificationUnknownOrderIsAccepted(t *testing.T) {
	app, _ := newWebhookApp(t)

	status := notify(t, app, map[string]string{
		"order_id":           "BK-never-issued",
		"status_code":        "200",
		"gross_amount":       "50.00",
		"transaction_status": "settlement",
	}, true)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestNotificationPendingLeavesRowUntouched(t *testing.T) {
	app, db := newWebhookApp(t)
	p := seedPayment(t, db, "BK-test-5")

	status := notify(t, app, map[string]string{
		"order_id":           p.PaymentOrderID,
		"status_code":        "201",
		"gross_amount":       "199.00",
		"transaction_status": "pending",
	}, true)
	require.Equal(t, fiber.StatusOK, status)

	var after model.PaymentModel
	require.NoError(t, db.First(&after, "payment_order_id = ?", p.PaymentOrderID).Error)
	assert.Equal(t, model.PaymentStatusInitiated, after.PaymentStatus)
}
