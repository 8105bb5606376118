package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"travelku_backend/internals/constants"
)

// GetUserID returns the authenticated caller's id from Locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("user_id missing from request context")
	}
	return uuid.Parse(raw)
}

// GetUserRole returns the caller's role; empty when unauthenticated.
func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}

// IsAdmin reports whether the caller carries the admin role.
func IsAdmin(c *fiber.Ctx) bool {
	return GetUserRole(c) == constants.RoleAdmin
}
