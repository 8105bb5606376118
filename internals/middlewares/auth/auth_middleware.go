package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelku_backend/internals/configs"
	userModel "travelku_backend/internals/features/users/user/model"
	helper "travelku_backend/internals/helpers"
)

// Locals keys set for downstream handlers.
const (
	LocUserID   = "user_id"
	LocUserRole = "user_role"
)

// AuthMiddleware verifies the bearer/cookie JWT, checks the account is still
// active, and stores the caller identity in Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Missing access token")
		}
		helper.SetRawAccessToken(c, tokenString)

		secret := configs.JWTSecret
		if secret == "" {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
		}

		var user userModel.UserModel
		if err := db.Select("user_id", "user_role", "user_is_active").
			First(&user, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		if !user.UserIsActive {
			return helper.JsonError(c, fiber.StatusForbidden, "Account has been deactivated")
		}

		c.Locals(LocUserID, userID.String())
		c.Locals(LocUserRole, user.UserRole)
		return c.Next()
	}
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing user_id claim")
	}
	return uuid.Parse(raw)
}
