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

	auth "travelku_backend/internals/middlewares/auth"

	"travelku_backend/internals/features/home/posts/model"
	userModel "travelku_backend/internals/features/users/user/model"
)

var postsSchema = []string{
	`CREATE TABLE users (
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
	)`,
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
	`CREATE TABLE posts (
		post_id text PRIMARY KEY,
		post_user_id text NOT NULL,
		post_title text NOT NULL,
		post_content text NOT NULL,
		post_location_id text,
		post_image_url text,
		post_status text NOT NULL DEFAULT 'pending',
		post_created_at datetime,
		post_updated_at datetime
	)`,
}

// newAdminApp mounts the admin post routes with the caller's identity
// pre-seeded, the way the auth middleware does after token verification.
func newAdminApp(t *testing.T) (*fiber.App, *gorm.DB, uuid.UUID) {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	for _, stmt := range postsSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	admin := userModel.UserModel{
		UserName:     "Root Admin",
		UserEmail:    "admin@example.com",
		UserPassword: "x",
		UserRole:     "admin",
	}
	require.NoError(t, db.Create(&admin).Error)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(auth.LocUserID, admin.UserID.String())
		c.Locals(auth.LocUserRole, admin.UserRole)
		return c.Next()
	})
	ctrl := NewPostAdminController(db)
	posts := app.Group("/posts")
	posts.Get("/", ctrl.GetAllPosts)
	posts.Post("/", ctrl.CreatePost)
	posts.Post("/:id/approve", ctrl.ApprovePost)
	return app, db, admin.UserID
}

func TestAdminCreatePostLandsPending(t *testing.T) {
	app, db, adminID := newAdminApp(t)

	raw, err := sonic.Marshal(fiber.Map{
		"post_title":   "Opening hours update",
		"post_content": "The citadel closes early during Tet.",
	})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/posts/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var post model.PostModel
	require.NoError(t, db.First(&post).Error)
	assert.Equal(t, adminID, post.PostUserID)
	assert.Equal(t, "Opening hours update", post.PostTitle)
	// admin-authored posts still go through approve
	assert.Equal(t, model.PostStatusPending, post.PostStatus)
}

func TestAdminCreatePostUnknownLocation(t *testing.T) {
	app, db, _ := newAdminApp(t)

	raw, err := sonic.Marshal(fiber.Map{
		"post_title":       "Ghost town",
		"post_content":     "Nothing here.",
		"post_location_id": uuid.NewString(),
	})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/posts/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.PostModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestAdminCreatePostMissingFields(t *testing.T) {
	app, _, _ := newAdminApp(t)

	raw, err := sonic.Marshal(fiber.Map{"post_title": ""})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/posts/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
