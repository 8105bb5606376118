package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"travelku_backend/internals/constants"
	"travelku_backend/internals/features/users/auth/dto"
	"travelku_backend/internals/features/users/auth/service"
	userDTO "travelku_backend/internals/features/users/user/dto"
	userModel "travelku_backend/internals/features/users/user/model"
	helper "travelku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /register — always creates a regular user; admins are made through the
// admin panel or the seeder.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	var count int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_email = ?", req.UserEmail).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	}

	hashed, err := service.HashPassword(req.UserPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPassword: hashed,
		UserRole:     constants.RoleUser,
		UserIsActive: true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}
	return helper.JsonCreated(c, "Registration successful", userDTO.ToUserDTO(user))
}

// POST /login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_email = ?", req.UserEmail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load account")
	}

	if !service.CheckPassword(user.UserPassword, req.UserPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	return ctrl.issueTokens(c, user, "Login successful")
}

// POST /login-google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	claims, err := service.VerifyGoogleIDToken(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}

	var user userModel.UserModel
	err = ctrl.DB.First(&user, "user_google_id = ?", claims.GoogleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// first Google sign-in: link by email if the account exists,
		// otherwise create one
		err = ctrl.DB.First(&user, "user_email = ?", claims.Email).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			password, perr := service.RandomPassword()
			if perr != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
			}
			user = userModel.UserModel{
				UserName:     claims.Name,
				UserEmail:    claims.Email,
				UserPassword: password,
				UserRole:     constants.RoleUser,
				UserGoogleID: &claims.GoogleID,
				UserIsActive: true,
			}
			if cerr := ctrl.DB.Create(&user).Error; cerr != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
			}
		} else if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load account")
		} else {
			user.UserGoogleID = &claims.GoogleID
			if serr := ctrl.DB.Save(&user).Error; serr != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to link account")
			}
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load account")
	}

	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	return ctrl.issueTokens(c, user, "Login successful")
}

// POST /logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	expire := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expire, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expire, HTTPOnly: true, Path: "/"})
	return helper.JsonOK(c, "Logout successful", nil)
}

// POST /forgot-password — direct reset by email. The legacy flow has no mail
// delivery, so the new password arrives in the same request.
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_email = ?", req.UserEmail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Email is not registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load account")
	}

	hashed, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	user.UserPassword = hashed

	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}
	return helper.JsonUpdated(c, "Password reset successful", nil)
}

func (ctrl *AuthController) issueTokens(c *fiber.Ctx, user userModel.UserModel, msg string) error {
	accessToken, refreshToken, err := service.GenerateTokens(user.UserID, user.UserRole)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	now := time.Now()
	c.Cookie(&fiber.Cookie{
		Name: "access_token", Value: accessToken,
		HTTPOnly: true, Secure: true, SameSite: "None", Path: "/",
		Expires: now.Add(24 * time.Hour),
	})
	c.Cookie(&fiber.Cookie{
		Name: "refresh_token", Value: refreshToken,
		HTTPOnly: true, Secure: true, SameSite: "None", Path: "/",
		Expires: now.Add(7 * 24 * time.Hour),
	})

	return helper.JsonOK(c, msg, fiber.Map{
		"access_token": accessToken,
		"user":         userDTO.ToUserDTO(user),
	})
}
