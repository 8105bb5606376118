package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	locationModel "travelku_backend/internals/features/travel/locations/model"
	userModel "travelku_backend/internals/features/users/user/model"
)

const (
	PostStatusPending  = "pending"
	PostStatusApproved = "approved"
)

// PostModel represents the posts table. New posts start as pending and only
// become visible once an admin approves them.
type PostModel struct {
	PostID         uuid.UUID  `gorm:"column:post_id;type:uuid;default:gen_random_uuid();primaryKey" json:"post_id"`
	PostUserID     uuid.UUID  `gorm:"column:post_user_id;type:uuid;not null" json:"post_user_id"`
	PostTitle      string     `gorm:"column:post_title;size:255;not null" json:"post_title"`
	PostContent    string     `gorm:"column:post_content;type:text;not null" json:"post_content"`
	PostLocationID *uuid.UUID `gorm:"column:post_location_id;type:uuid" json:"post_location_id"`
	PostImageURL   *string    `gorm:"column:post_image_url;type:text" json:"post_image_url"`
	PostStatus     string     `gorm:"column:post_status;type:varchar(20);not null;default:'pending'" json:"post_status"`

	PostCreatedAt time.Time `gorm:"column:post_created_at;autoCreateTime" json:"post_created_at"`
	PostUpdatedAt time.Time `gorm:"column:post_updated_at;autoUpdateTime" json:"post_updated_at"`

	User     *userModel.UserModel         `gorm:"foreignKey:PostUserID" json:"user,omitempty"`
	Location *locationModel.LocationModel `gorm:"foreignKey:PostLocationID" json:"location,omitempty"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.PostID == uuid.Nil {
		p.PostID = uuid.New()
	}
	if p.PostStatus == "" {
		p.PostStatus = PostStatusPending
	}
	return nil
}
