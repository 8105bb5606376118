package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	locationModel "travelku_backend/internals/features/travel/locations/model"
	"travelku_backend/internals/features/travel/tours/model"
)

var testSchema = []string{
	`CREATE TABLE locations (
		location_id text PRIMARY KEY,
		location_name text NOT NULL,
		location_description text NOT NULL,
		location_transportation text NOT NULL,
		location_booking_info text NOT NULL,
		location_image_url text,
		location_created_at datetime,
		location_updated_at datetime
	)`,
	`CREATE TABLE tours (
		tour_id text PRIMARY KEY,
		tour_location_id text NOT NULL,
		tour_title text NOT NULL,
		tour_description text NOT NULL,
		tour_price real NOT NULL,
		tour_start_date date NOT NULL,
		tour_end_date date NOT NULL,
		tour_highlights text,
		tour_image_url text,
		tour_created_at datetime,
		tour_updated_at datetime
	)`,
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	for _, stmt := range testSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	app := fiber.New()
	ctrl := NewTourController(db)
	tours := app.Group("/tours")
	tours.Get("/", ctrl.GetAllTours)
	tours.Post("/", ctrl.CreateTour)
	tours.Post("/:id", ctrl.UpdateTour)
	tours.Delete("/:id", ctrl.DeleteTour)
	return app, db
}

func seedLocation(t *testing.T, db *gorm.DB) locationModel.LocationModel {
	t.Helper()
	l := locationModel.LocationModel{
		LocationName:           "Hanoi",
		LocationDescription:    "Capital",
		LocationTransportation: "Train",
		LocationBookingInfo:    "Online",
	}
	require.NoError(t, db.Create(&l).Error)
	return l
}

func postJSON(t *testing.T, app *fiber.App, target string, payload map[string]any) (*fiber.Map, int) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out fiber.Map
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return &out, resp.StatusCode
}

func TestCreateTour(t *testing.T) {
	app, db := newTestApp(t)
	loc := seedLocation(t, db)

	body, status := postJSON(t, app, "/tours/", map[string]any{
		"tour_location_id": loc.LocationID.String(),
		"tour_title":       "Hanoi 3D2N",
		"tour_description": "Old quarter and Ha Long day trip",
		"tour_price":       199.0,
		"tour_start_date":  "2026-09-10",
		"tour_end_date":    "2026-09-12",
		"tour_highlights":  []string{"Old Quarter", "Ha Long Bay"},
	})
	require.Equal(t, fiber.StatusCreated, status, "%v", body)

	var tour model.TourModel
	require.NoError(t, db.First(&tour).Error)
	assert.Equal(t, "Hanoi 3D2N", tour.TourTitle)
	assert.Equal(t, 199.0, tour.TourPrice)
	assert.Equal(t, loc.LocationID, tour.TourLocationID)
	assert.Nil(t, tour.TourImageURL)
}

func TestCreateTourEndBeforeStart(t *testing.T) {
	app, db := newTestApp(t)
	loc := seedLocation(t, db)

	body, status := postJSON(t, app, "/tours/", map[string]any{
		"tour_location_id": loc.LocationID.String(),
		"tour_title":       "Backwards",
		"tour_description": "Dates reversed",
		"tour_price":       10.0,
		"tour_start_date":  "2026-09-12",
		"tour_end_date":    "2026-09-10",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	errs := (*body)["errors"].(map[string]any)
	assert.Contains(t, errs, "tour_end_date")
}

func TestCreateTourSingleDayAllowed(t *testing.T) {
	app, db := newTestApp(t)
	loc := seedLocation(t, db)

	_, status := postJSON(t, app, "/tours/", map[string]any{
		"tour_location_id": loc.LocationID.String(),
		"tour_title":       "Day trip",
		"tour_description": "Start equals end",
		"tour_price":       25.0,
		"tour_start_date":  "2026-09-10",
		"tour_end_date":    "2026-09-10",
	})
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestCreateTourUnknownLocation(t *testing.T) {
	app, _ := newTestApp(t)

	body, status := postJSON(t, app, "/tours/", map[string]any{
		"tour_location_id": uuid.NewString(),
		"tour_title":       "Nowhere",
		"tour_description": "Bad reference",
		"tour_price":       10.0,
		"tour_start_date":  "2026-09-10",
		"tour_end_date":    "2026-09-11",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	errs := (*body)["errors"].(map[string]any)
	assert.Contains(t, errs, "tour_location_id")
}

func TestCreateTourMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	body, status := postJSON(t, app, "/tours/", map[string]any{})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	errs := (*body)["errors"].(map[string]any)
	assert.Contains(t, errs, "tour_title")
	assert.Contains(t, errs, "tour_start_date")
}

func TestUpdateTourFullReplace(t *testing.T) {
	app, db := newTestApp(t)
	loc := seedLocation(t, db)

	_, status := postJSON(t, app, "/tours/", map[string]any{
		"tour_location_id": loc.LocationID.String(),
		"tour_title":       "Original",
		"tour_description": "Before",
		"tour_price":       50.0,
		"tour_start_date":  "2026-09-10",
		"tour_end_date":    "2026-09-12",
		"tour_highlights":  []string{"A", "B"},
	})
	require.Equal(t, fiber.StatusCreated, status)

	var tour model.TourModel
	require.NoError(t, db.First(&tour).Error)

	// update omits highlights: full replace clears them
	_, status = postJSON(t, app, "/tours/"+tour.TourID.String(), map[string]any{
		"tour_location_id": loc.LocationID.String(),
		"tour_title":       "Renamed",
		"tour_description": "After",
		"tour_price":       60.0,
		"tour_start_date":  "2026-10-01",
		"tour_end_date":    "2026-10-03",
	})
	require.Equal(t, fiber.StatusOK, status)

	var updated model.TourModel
	require.NoError(t, db.First(&updated, "tour_id = ?", tour.TourID).Error)
	assert.Equal(t, "Renamed", updated.TourTitle)
	assert.Equal(t, 60.0, updated.TourPrice)
	assert.Empty(t, updated.TourHighlights)
}

func TestUpdateTourNotFound(t *testing.T) {
	app, db := newTestApp(t)
	loc := seedLocation(t, db)

	_, status := postJSON(t, app, "/tours/"+uuid.NewString(), map[string]any{
		"tour_location_id": loc.LocationID.String(),
		"tour_title":       "Ghost",
		"tour_description": "Missing",
		"tour_price":       10.0,
		"tour_start_date":  "2026-09-10",
		"tour_end_date":    "2026-09-11",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDeleteTourNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("DELETE", "/tours/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
