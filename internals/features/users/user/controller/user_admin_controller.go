package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travelku_backend/internals/features/users/user/dto"
	"travelku_backend/internals/features/users/user/model"
	helper "travelku_backend/internals/helpers"
)

type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

// GET /api/admin/users
func (ctrl *UserAdminController) GetAllUsers(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := ctrl.DB.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := ctrl.DB.
		Order("user_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	result := dto.ToUserDTOs(users)
	return helper.JsonList(c, "", result, helper.BuildPagination(total, pg, len(result)))
}

// GET /api/admin/users/:id
func (ctrl *UserAdminController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}
	return helper.JsonOK(c, "", dto.ToUserDTO(user))
}

// POST /api/admin/users
func (ctrl *UserAdminController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	var count int64
	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("user_email = ?", req.UserEmail).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPassword: string(hashed),
		UserRole:     req.UserRole,
		UserIsActive: true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}
	return helper.JsonCreated(c, "User created", dto.ToUserDTO(user))
}

// POST /api/admin/users/:id — full replace of the editable profile fields.
func (ctrl *UserAdminController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	// keeping your own email is not a conflict
	if req.UserEmail != user.UserEmail {
		var count int64
		if err := ctrl.DB.Model(&model.UserModel{}).
			Where("user_email = ? AND user_id <> ?", req.UserEmail, id).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
		}
	}

	dob, err := dto.ParseDOB(req.UserDOB)
	if err != nil {
		return helper.JsonValidationError(c, helper.FieldError("user_dob", "must be a valid date in 2006-01-02 format."))
	}

	user.UserName = req.UserName
	user.UserEmail = req.UserEmail
	user.UserRole = req.UserRole
	user.UserBio = req.UserBio
	user.UserDOB = dob
	if req.UserIsActive != nil {
		user.UserIsActive = *req.UserIsActive
	}

	if file, err := c.FormFile("avatar"); err == nil && file != nil {
		if user.UserAvatarURL != nil {
			if err := helper.DeleteStoredImage(*user.UserAvatarURL); err != nil {
				log.Printf("[ERROR] delete old avatar: %v", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to replace avatar")
			}
		}
		url, err := helper.SaveUploadedImage("avatars", file)
		if err != nil {
			if errors.Is(err, helper.ErrImageTooLarge) || errors.Is(err, helper.ErrImageBadFormat) {
				return helper.JsonValidationError(c, helper.FieldError("avatar", err.Error()))
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store avatar")
		}
		user.UserAvatarURL = &url
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.JsonUpdated(c, "User updated", dto.ToUserDTO(user))
}

// DELETE /api/admin/users/:id
func (ctrl *UserAdminController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	if user.UserAvatarURL != nil {
		if err := helper.DeleteStoredImage(*user.UserAvatarURL); err != nil {
			log.Printf("[ERROR] delete avatar: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete avatar")
		}
	}

	if err := ctrl.DB.Delete(&model.UserModel{}, "user_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	return helper.JsonDeleted(c, "User deleted", fiber.Map{"user_id": id})
}
