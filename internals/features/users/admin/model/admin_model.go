package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminModel struct {
	AdminID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admin_id" json:"admin_id"`
	AdminName     string    `gorm:"not null;column:admin_name" json:"admin_name"`
	AdminEmail    string    `gorm:"uniqueIndex;not null;column:admin_email" json:"admin_email"`
	AdminPassword string    `gorm:"not null;column:admin_password" json:"-"`

	AdminResetToken       *string    `gorm:"column:admin_reset_token" json:"-"`
	AdminResetTokenExpiry *time.Time `gorm:"column:admin_reset_token_expiry" json:"-"`

	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
}

func (AdminModel) TableName() string { return "admins" }
