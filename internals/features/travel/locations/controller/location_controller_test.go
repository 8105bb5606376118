package controller

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"travelku_backend/internals/features/travel/locations/model"
)

const locationsSchema = `CREATE TABLE locations (
	location_id text PRIMARY KEY,
	location_name text NOT NULL,
	location_description text NOT NULL,
	location_transportation text NOT NULL,
	location_booking_info text NOT NULL,
	location_image_url text,
	location_created_at datetime,
	location_updated_at datetime
)`

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(locationsSchema).Error)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	app := fiber.New()
	ctrl := NewLocationController(db)
	locations := app.Group("/locations")
	locations.Get("/", ctrl.GetAllLocations)
	locations.Post("/", ctrl.CreateLocation)
	locations.Post("/:id", ctrl.UpdateLocation)
	locations.Delete("/:id", ctrl.DeleteLocation)
	return app, db
}

// multipartForm builds a form with the location fields plus an optional
// image file. WebP files are stored raw, so any payload bytes will do.
func multipartForm(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if imageName != "" {
		fw, err := w.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake-webp-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

var locationFields = map[string]string{
	"location_name":           "Sapa",
	"location_description":    "Mountain town",
	"location_transportation": "Overnight bus",
	"location_booking_info":   "Book two days ahead",
}

func TestCreateLocationWithImage(t *testing.T) {
	app, db := newTestApp(t)
	t.Setenv("UPLOAD_DIR", t.TempDir())

	body, contentType := multipartForm(t, locationFields, "terraces.webp")
	req := httptest.NewRequest("POST", "/locations/", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var loc model.LocationModel
	require.NoError(t, db.First(&loc).Error)
	require.NotNil(t, loc.LocationImageURL)
	assert.True(t, strings.HasPrefix(*loc.LocationImageURL, "/uploads/locations/"))
}

func TestUpdateLocationReplacesImageFile(t *testing.T) {
	app, db := newTestApp(t)
	uploadDir := t.TempDir()
	t.Setenv("UPLOAD_DIR", uploadDir)

	require.NoError(t, os.MkdirAll(filepath.Join(uploadDir, "locations"), 0o755))
	oldFile := filepath.Join(uploadDir, "locations", "old.webp")
	require.NoError(t, os.WriteFile(oldFile, []byte("old"), 0o644))

	oldPath := "/uploads/locations/old.webp"
	loc := model.LocationModel{
		LocationName:           "Sapa",
		LocationDescription:    "Mountain town",
		LocationTransportation: "Overnight bus",
		LocationBookingInfo:    "Book two days ahead",
		LocationImageURL:       &oldPath,
	}
	require.NoError(t, db.Create(&loc).Error)

	body, contentType := multipartForm(t, locationFields, "new.webp")
	req := httptest.NewRequest("POST", "/locations/"+loc.LocationID.String(), body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// exactly one file remains and the record points at it
	entries, err := os.ReadDir(filepath.Join(uploadDir, "locations"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEqual(t, "old.webp", entries[0].Name())

	var updated model.LocationModel
	require.NoError(t, db.First(&updated, "location_id = ?", loc.LocationID).Error)
	require.NotNil(t, updated.LocationImageURL)
	assert.Equal(t, "/uploads/locations/"+entries[0].Name(), *updated.LocationImageURL)
}

func TestDeleteLocationRemovesImageFile(t *testing.T) {
	app, db := newTestApp(t)
	uploadDir := t.TempDir()
	t.Setenv("UPLOAD_DIR", uploadDir)

	require.NoError(t, os.MkdirAll(filepath.Join(uploadDir, "locations"), 0o755))
	file := filepath.Join(uploadDir, "locations", "gone.webp")
	require.NoError(t, os.WriteFile(file, []byte("img"), 0o644))

	path := "/uploads/locations/gone.webp"
	loc := model.LocationModel{
		LocationName:           "Sapa",
		LocationDescription:    "Mountain town",
		LocationTransportation: "Overnight bus",
		LocationBookingInfo:    "Book two days ahead",
		LocationImageURL:       &path,
	}
	require.NoError(t, db.Create(&loc).Error)

	req := httptest.NewRequest("DELETE", "/locations/"+loc.LocationID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, statErr := os.Stat(file)
	assert.True(t, os.IsNotExist(statErr))

	var count int64
	require.NoError(t, db.Model(&model.LocationModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestValidationFailureReturnsFieldMap(t *testing.T) {
	app, _ := newTestApp(t)

	body, contentType := multipartForm(t, map[string]string{"location_name": ""}, "")
	req := httptest.NewRequest("POST", "/locations/", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
