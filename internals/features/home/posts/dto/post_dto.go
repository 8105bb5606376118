package dto

import (
	"time"

	"github.com/google/uuid"

	"travelku_backend/internals/features/home/posts/model"
)

type PostAuthorDTO struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
}

type PostDTO struct {
	PostID         uuid.UUID      `json:"post_id"`
	PostUserID     uuid.UUID      `json:"post_user_id"`
	PostTitle      string         `json:"post_title"`
	PostContent    string         `json:"post_content"`
	PostLocationID *uuid.UUID     `json:"post_location_id"`
	PostImageURL   *string        `json:"post_image_url"`
	PostStatus     string         `json:"post_status"`
	PostCreatedAt  time.Time      `json:"post_created_at"`
	User           *PostAuthorDTO `json:"user,omitempty"`
}

// PostRequest carries both create and full-replace update payloads. The image
// travels separately as a multipart file.
type PostRequest struct {
	PostTitle      string  `json:"post_title" form:"post_title" validate:"required,max=255"`
	PostContent    string  `json:"post_content" form:"post_content" validate:"required"`
	PostLocationID *string `json:"post_location_id" form:"post_location_id" validate:"omitempty,uuid"`
}

func ToPostDTO(m model.PostModel) PostDTO {
	out := PostDTO{
		PostID:         m.PostID,
		PostUserID:     m.PostUserID,
		PostTitle:      m.PostTitle,
		PostContent:    m.PostContent,
		PostLocationID: m.PostLocationID,
		PostImageURL:   m.PostImageURL,
		PostStatus:     m.PostStatus,
		PostCreatedAt:  m.PostCreatedAt,
	}
	if m.User != nil {
		out.User = &PostAuthorDTO{
			UserID:   m.User.UserID,
			UserName: m.User.UserName,
		}
	}
	return out
}

func ToPostDTOs(ms []model.PostModel) []PostDTO {
	out := make([]PostDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPostDTO(m))
	}
	return out
}
