package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelku_backend/internals/features/home/posts/model"
	locationModel "travelku_backend/internals/features/travel/locations/model"
	helper "travelku_backend/internals/helpers"
)

// ValidationError carries field-level messages out of the service so the
// controller can render them as a 422 without guessing.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string { return "validation failed" }

type PostService struct {
	DB *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{DB: db}
}

// Create stores a new post on behalf of callerID. Posts always start pending
// regardless of who created them.
func (s *PostService) Create(callerID uuid.UUID, title, content string, locationID *uuid.UUID, imageURL *string) (model.PostModel, error) {
	if locationID != nil {
		var loc locationModel.LocationModel
		if err := s.DB.Select("location_id").First(&loc, "location_id = ?", *locationID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return model.PostModel{}, &ValidationError{Fields: map[string][]string{
					"post_location_id": {"referenced location does not exist."},
				}}
			}
			return model.PostModel{}, err
		}
	}

	post := model.PostModel{
		PostUserID:     callerID,
		PostTitle:      title,
		PostContent:    content,
		PostLocationID: locationID,
		PostImageURL:   imageURL,
		PostStatus:     model.PostStatusPending,
	}
	if err := s.DB.Create(&post).Error; err != nil {
		return model.PostModel{}, err
	}
	return post, nil
}

// ListApproved returns approved posts, newest first, paginated.
func (s *PostService) ListApproved(pg helper.Paging) ([]model.PostModel, int64, error) {
	return s.list(pg, "post_status = ?", model.PostStatusApproved)
}

// ListAll returns every post regardless of status, newest first, paginated.
func (s *PostService) ListAll(pg helper.Paging) ([]model.PostModel, int64, error) {
	return s.list(pg)
}

func (s *PostService) list(pg helper.Paging, conds ...any) ([]model.PostModel, int64, error) {
	count := s.DB.Model(&model.PostModel{})
	if len(conds) > 0 {
		count = count.Where(conds[0], conds[1:]...)
	}
	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := s.DB.
		Preload("User").
		Order("post_created_at DESC").
		Offset(pg.Offset).
		Limit(pg.Limit)
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}

	var posts []model.PostModel
	if err := q.Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListPending returns every pending post awaiting moderation, newest first.
func (s *PostService) ListPending() ([]model.PostModel, error) {
	var posts []model.PostModel
	err := s.DB.
		Preload("User").
		Where("post_status = ?", model.PostStatusPending).
		Order("post_created_at DESC").
		Find(&posts).Error
	return posts, err
}

// ListMine returns all of callerID's own posts, any status, newest first.
func (s *PostService) ListMine(callerID uuid.UUID) ([]model.PostModel, error) {
	var posts []model.PostModel
	err := s.DB.
		Where("post_user_id = ?", callerID).
		Order("post_created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (s *PostService) Get(id uuid.UUID) (model.PostModel, error) {
	var post model.PostModel
	err := s.DB.Preload("User").First(&post, "post_id = ?", id).Error
	return post, err
}

// Approve marks a post approved. Re-approving an already approved post is a
// no-op that still succeeds. There is no row lock here: two moderators acting
// at once both win, which matches the intended last-write semantics.
func (s *PostService) Approve(id uuid.UUID) (model.PostModel, error) {
	var post model.PostModel
	if err := s.DB.First(&post, "post_id = ?", id).Error; err != nil {
		return model.PostModel{}, err
	}
	post.PostStatus = model.PostStatusApproved
	if err := s.DB.Save(&post).Error; err != nil {
		return model.PostModel{}, err
	}
	return post, nil
}

// Delete removes a post and its stored image, if any. A missing image file is
// not an error; a failing removal aborts the delete.
func (s *PostService) Delete(id uuid.UUID) error {
	var post model.PostModel
	if err := s.DB.First(&post, "post_id = ?", id).Error; err != nil {
		return err
	}
	if post.PostImageURL != nil {
		if err := helper.DeleteStoredImage(*post.PostImageURL); err != nil {
			return err
		}
	}
	return s.DB.Delete(&post).Error
}
