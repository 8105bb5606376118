package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"travelku_backend/internals/features/users/user/model"
)

type UserDTO struct {
	UserID        uuid.UUID       `json:"user_id"`
	UserName      string          `json:"user_name"`
	UserEmail     string          `json:"user_email"`
	UserRole      string          `json:"user_role"`
	UserAvatarURL *string         `json:"user_avatar_url"`
	UserBio       *string         `json:"user_bio"`
	UserDOB       *datatypes.Date `json:"user_dob"`
	UserIsActive  bool            `json:"user_is_active"`
	UserCreatedAt time.Time       `json:"user_created_at"`
}

// CreateUserRequest is the admin-side JSON payload for creating an account.
type CreateUserRequest struct {
	UserName     string `json:"user_name" validate:"required,max=255"`
	UserEmail    string `json:"user_email" validate:"required,email,max=255"`
	UserPassword string `json:"user_password" validate:"required,min=6"`
	UserRole     string `json:"user_role" validate:"required,oneof=admin user"`
}

// UpdateUserRequest is the admin-side full-replace payload. It travels as
// multipart form data so the avatar can ride along.
type UpdateUserRequest struct {
	UserName  string  `json:"user_name" form:"user_name" validate:"required,max=255"`
	UserEmail string  `json:"user_email" form:"user_email" validate:"required,email,max=255"`
	UserRole  string  `json:"user_role" form:"user_role" validate:"required,oneof=admin user"`
	UserBio   *string `json:"user_bio" form:"user_bio"`
	UserDOB   *string `json:"user_dob" form:"user_dob" validate:"omitempty,datetime=2006-01-02"`
	// nil keeps the current activation state
	UserIsActive *bool `json:"user_is_active" form:"user_is_active"`
}

// UpdateProfileRequest is what a signed-in user may change about themselves.
type UpdateProfileRequest struct {
	UserName string  `json:"user_name" form:"user_name" validate:"required,max=255"`
	UserBio  *string `json:"user_bio" form:"user_bio"`
	UserDOB  *string `json:"user_dob" form:"user_dob" validate:"omitempty,datetime=2006-01-02"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserAvatarURL: m.UserAvatarURL,
		UserBio:       m.UserBio,
		UserDOB:       m.UserDOB,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}

func ToUserDTOs(ms []model.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToUserDTO(m))
	}
	return out
}

// ParseDOB turns the form date string into the column type.
func ParseDOB(raw *string) (*datatypes.Date, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}
