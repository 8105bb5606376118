package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	auth "travelku_backend/internals/middlewares/auth"

	"travelku_backend/internals/features/users/user/dto"
	"travelku_backend/internals/features/users/user/model"
	helper "travelku_backend/internals/helpers"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// GET /api/user
func (ctrl *ProfileController) GetProfile(c *fiber.Ctx) error {
	callerID, err := auth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", callerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve profile")
	}
	return helper.JsonOK(c, "", dto.ToUserDTO(user))
}

// POST /profile — the caller updates their own name, bio, dob, avatar.
func (ctrl *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	callerID, err := auth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", callerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	dob, err := dto.ParseDOB(req.UserDOB)
	if err != nil {
		return helper.JsonValidationError(c, helper.FieldError("user_dob", "must be a valid date in 2006-01-02 format."))
	}

	user.UserName = req.UserName
	user.UserBio = req.UserBio
	user.UserDOB = dob

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
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	return helper.JsonUpdated(c, "Profile updated", dto.ToUserDTO(user))
}

// POST /change-password
func (ctrl *ProfileController) ChangePassword(c *fiber.Ctx) error {
	callerID, err := auth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", callerID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.OldPassword)) != nil {
		return helper.JsonValidationError(c, helper.FieldError("old_password", "does not match the current password."))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	user.UserPassword = string(hashed)

	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change password")
	}
	return helper.JsonUpdated(c, "Password changed", nil)
}
