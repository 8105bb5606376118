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

type PostAdminController struct {
	Service *service.PostService
}

func NewPostAdminController(db *gorm.DB) *PostAdminController {
	return &PostAdminController{Service: service.NewPostService(db)}
}

// GET /api/admin/posts
func (ctrl *PostAdminController) GetAllPosts(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 10, 100)

	posts, total, err := ctrl.Service.ListAll(pg)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve posts")
	}
	result := dto.ToPostDTOs(posts)
	return helper.JsonList(c, "", result, helper.BuildPagination(total, pg, len(result)))
}

// POST /api/admin/posts — admins author posts under their own id. Like user
// submissions they land pending and go through approve.
func (ctrl *PostAdminController) CreatePost(c *fiber.Ctx) error {
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
		if imageURL != nil {
			_ = helper.DeleteStoredImage(*imageURL)
		}
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return helper.JsonValidationError(c, verr.Fields)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create post")
	}
	return helper.JsonCreated(c, "Post created", dto.ToPostDTO(post))
}

// GET /posts/pending
func (ctrl *PostAdminController) GetPendingPosts(c *fiber.Ctx) error {
	posts, err := ctrl.Service.ListPending()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve pending posts")
	}
	return helper.JsonOK(c, "", dto.ToPostDTOs(posts))
}

// GET /api/admin/posts/:id
func (ctrl *PostAdminController) GetPost(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "", dto.ToPostDTO(post))
}

// POST /api/posts/:id/approve
func (ctrl *PostAdminController) ApprovePost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	post, err := ctrl.Service.Approve(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve post")
	}
	return helper.JsonUpdated(c, "Post approved", dto.ToPostDTO(post))
}

// DELETE /api/admin/posts/:id
func (ctrl *PostAdminController) DeletePost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	if err := ctrl.Service.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete post")
	}
	return helper.JsonDeleted(c, "Post deleted", fiber.Map{"post_id": id})
}
