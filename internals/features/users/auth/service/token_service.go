// file: internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"absensiku_backend/internals/configs"
)

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// CreateToken menerbitkan JWT HS256 berumur 7 hari dengan klaim id + role.
func CreateToken(id uuid.UUID, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   id.String(),
		"role": role,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
