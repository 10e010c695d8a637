// file: internals/middlewares/auth/auth_middleware.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"absensiku_backend/internals/configs"
)

// StaffJWT memverifikasi Bearer token staff dan menyetel c.Locals("staff_id").
func StaffJWT() fiber.Handler {
	return authJWT("staff", "staff_id")
}

// AdminJWT memverifikasi Bearer token admin dan menyetel c.Locals("admin_id").
func AdminJWT() fiber.Handler {
	return authJWT("admin", "admin_id")
}

func authJWT(wantRole, localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "No token. Authorization denied")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil || !tok.Valid {
			if err != nil && strings.Contains(err.Error(), "expired") {
				return fiber.NewError(fiber.StatusUnauthorized, "Token expired. Please login again.")
			}
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		role, _ := claims["role"].(string)
		if role != wantRole {
			return fiber.NewError(fiber.StatusForbidden, "Akses ditolak untuk role ini")
		}

		id, _ := claims["id"].(string)
		if strings.TrimSpace(id) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals(localsKey, id)

		return c.Next()
	}
}
