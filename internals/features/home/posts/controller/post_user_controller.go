package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auth "travelku_backend/internals/middlewares/auth"

	"travelku_backend/internals/features/home/posts/dto"
	"travelku_backend/internals/features/home/posts/service"
	helper "travelku_backend/internals/helpers"
)

type PostUserController struct {
	Service *service.PostService
}

func NewPostUserController(db *gorm.DB) *PostUserController {
	return &PostUserController{Service: service.NewPostService(db)}
}

// GET /posts — approved posts only, paginated.
func (ctrl *PostUserController) GetApprovedPosts(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 10, 100)

	posts, total, err := ctrl.Service.ListApproved(pg)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve posts")
	}
	result := dto.ToPostDTOs(posts)
	return helper.JsonList(c, "", result, helper.BuildPagination(total, pg, len(result)))
}

// POST /posts — any signed-in user may submit; the post lands as pending.
func (ctrl *PostUserController) CreatePost(c *fiber.Ctx) error {
	callerID, err := auth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	var locationID *uuid.UUID
	if req.PostLocationID != nil && *req.PostLocationID != "" {
		id, err := uuid.Parse(*req.PostLocationID)
		if err != nil {
			return helper.JsonValidationError(c, helper.FieldError("post_location_id", "must be a valid uuid."))
		}
		locationID = &id
	}

	var imageURL *string
	if file, err := c.FormFile("image"); err == nil && file != nil {
		url, err := helper.SaveUploadedImage("posts", file)
		if err != nil {
			if errors.Is(err, helper.ErrImageTooLarge) || errors.Is(err, helper.ErrImageBadFormat) {
				return helper.JsonValidationError(c, helper.FieldError("image", err.Error()))
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store image")
		}
		imageURL = &url
	}

	post, err := ctrl.Service.Create(callerID, req.PostTitle, req.PostContent, locationID, imageURL)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			// creation failed after the file landed; clean it up
			if imageURL != nil {
				_ = helper.DeleteStoredImage(*imageURL)
			}
			return helper.JsonValidationError(c, verr.Fields)
		}
		if imageURL != nil {
			_ = helper.DeleteStoredImage(*imageURL)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create post")
	}
	return helper.JsonCreated(c, "Post created", dto.ToPostDTO(post))
}

// GET /user/posts — the caller's own posts, any status.
func (ctrl *PostUserController) GetMyPosts(c *fiber.Ctx) error {
	callerID, err := auth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	posts, err := ctrl.Service.ListMine(callerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve posts")
	}
	return helper.JsonOK(c, "", dto.ToPostDTOs(posts))
}

// DELETE /posts/:id — owners may remove their own post, admins any.
func (ctrl *PostUserController) DeletePost(c *fiber.Ctx) error {
	callerID, err := auth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	post, err := ctrl.Service.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve post")
	}

	if post.PostUserID != callerID && !auth.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only delete your own posts")
	}

	if err := ctrl.Service.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete post")
	}
	return helper.JsonDeleted(c, "Post deleted", fiber.Map{"post_id": id})
}
