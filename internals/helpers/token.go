package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetStaffIDFromToken mengambil staff_id yang sudah di-set middleware AuthJWT.
func GetStaffIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, "staff_id")
}

// GetAdminIDFromToken mengambil admin_id yang sudah di-set middleware AdminJWT.
func GetAdminIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, "admin_id")
}

func localsUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Token tidak valid")
	}
	return id, nil
}
