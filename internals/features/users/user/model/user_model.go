package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserModel represents the users table.
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;size:255;not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;size:255;uniqueIndex;not null" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;not null" json:"-"`
	UserRole     string    `gorm:"column:user_role;type:varchar(20);not null;default:'user'" json:"user_role"`

	UserAvatarURL *string         `gorm:"column:user_avatar_url;type:text" json:"user_avatar_url"`
	UserBio       *string         `gorm:"column:user_bio;type:text" json:"user_bio"`
	UserDOB       *datatypes.Date `gorm:"column:user_dob" json:"user_dob"`
	UserGoogleID  *string         `gorm:"column:user_google_id;size:255;uniqueIndex" json:"-"`
	UserIsActive  bool            `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
