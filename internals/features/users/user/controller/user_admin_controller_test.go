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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"travelku_backend/internals/features/users/user/model"
)

const usersSchema = `CREATE TABLE users (
	user_id text PRIMARY KEY,
	user_name text NOT NULL,
	user_email text NOT NULL UNIQUE,
	user_password text NOT NULL,
	user_role text NOT NULL DEFAULT 'user',
	user_avatar_url text,
	user_bio text,
	user_dob date,
	user_google_id text,
	user_is_active boolean NOT NULL DEFAULT true,
	user_created_at datetime,
	user_updated_at datetime
)`

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(usersSchema).Error)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	app := fiber.New()
	ctrl := NewUserAdminController(db)
	users := app.Group("/users")
	users.Get("/", ctrl.GetAllUsers)
	users.Get("/:id", ctrl.GetUser)
	users.Post("/", ctrl.CreateUser)
	users.Post("/:id", ctrl.UpdateUser)
	users.Delete("/:id", ctrl.DeleteUser)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, target string, payload map[string]any) (map[string]any, int) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out, resp.StatusCode
}

func seedAccount(t *testing.T, db *gorm.DB, email string) model.UserModel {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := model.UserModel{
		UserName:     "Existing",
		UserEmail:    email,
		UserPassword: string(hashed),
		UserRole:     "user",
		UserIsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func TestCreateUserHashesPassword(t *testing.T) {
	app, db := newTestApp(t)

	_, status := postJSON(t, app, "/users/", map[string]any{
		"user_name":     "New Admin",
		"user_email":    "admin@example.com",
		"user_password": "supersecret1",
		"user_role":     "admin",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var user model.UserModel
	require.NoError(t, db.First(&user, "user_email = ?", "admin@example.com").Error)
	assert.Equal(t, "admin", user.UserRole)
	assert.NotEqual(t, "supersecret1", user.UserPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte("supersecret1")))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	app, db := newTestApp(t)
	seedAccount(t, db, "taken@example.com")

	_, status := postJSON(t, app, "/users/", map[string]any{
		"user_name":     "Second",
		"user_email":    "taken@example.com",
		"user_password": "supersecret1",
		"user_role":     "user",
	})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestCreateUserInvalidRole(t *testing.T) {
	app, _ := newTestApp(t)

	body, status := postJSON(t, app, "/users/", map[string]any{
		"user_name":     "Bad Role",
		"user_email":    "role@example.com",
		"user_password": "supersecret1",
		"user_role":     "moderator",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "user_role")
}

func TestUpdateUserKeepOwnEmail(t *testing.T) {
	app, db := newTestApp(t)
	user := seedAccount(t, db, "keep@example.com")

	_, status := postJSON(t, app, "/users/"+user.UserID.String(), map[string]any{
		"user_name":  "Renamed",
		"user_email": "keep@example.com",
		"user_role":  "user",
	})
	require.Equal(t, fiber.StatusOK, status)

	var updated model.UserModel
	require.NoError(t, db.First(&updated, "user_id = ?", user.UserID).Error)
	assert.Equal(t, "Renamed", updated.UserName)
}

func TestUpdateUserTakenEmail(t *testing.T) {
	app, db := newTestApp(t)
	seedAccount(t, db, "first@example.com")
	second := seedAccount(t, db, "second@example.com")

	_, status := postJSON(t, app, "/users/"+second.UserID.String(), map[string]any{
		"user_name":  "Second",
		"user_email": "first@example.com",
		"user_role":  "user",
	})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestUpdateUserFullReplaceClearsBio(t *testing.T) {
	app, db := newTestApp(t)
	user := seedAccount(t, db, "bio@example.com")
	bio := "Old bio"
	user.UserBio = &bio
	require.NoError(t, db.Save(&user).Error)

	_, status := postJSON(t, app, "/users/"+user.UserID.String(), map[string]any{
		"user_name":  "Existing",
		"user_email": "bio@example.com",
		"user_role":  "user",
	})
	require.Equal(t, fiber.StatusOK, status)

	var updated model.UserModel
	require.NoError(t, db.First(&updated, "user_id = ?", user.UserID).Error)
	assert.Nil(t, updated.UserBio)
}

func TestGetUserNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/users/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteUser(t *testing.T) {
	app, db := newTestApp(t)
	user := seedAccount(t, db, "gone@example.com")

	req := httptest.NewRequest("DELETE", "/users/"+user.UserID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.UserModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
