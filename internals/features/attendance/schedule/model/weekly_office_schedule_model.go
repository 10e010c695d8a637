package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WeeklyOfficeScheduleModel adalah kebijakan hari kantor global (berlaku
// untuk SEMUA staff). Dimodelkan sebagai konfigurasi ber-versi: update admin
// menonaktifkan versi lama dan menyisipkan versi baru dalam satu transaksi,
// sehingga pembaca tidak pernah melihat state kosong di tengah pergantian.
type WeeklyOfficeScheduleModel struct {
	WeeklyOfficeScheduleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:weekly_office_schedule_id" json:"weekly_office_schedule_id"`

	// Nama hari dalam bahasa Inggris: ["Monday", "Wednesday", "Friday"]
	WeeklyOfficeScheduleDays datatypes.JSONSlice[string] `gorm:"not null;column:weekly_office_schedule_days" json:"weekly_office_schedule_days"`

	WeeklyOfficeScheduleWeekStart *time.Time `gorm:"type:date;column:weekly_office_schedule_week_start" json:"weekly_office_schedule_week_start,omitempty"`

	WeeklyOfficeScheduleIsActive bool `gorm:"not null;default:true;index;column:weekly_office_schedule_is_active" json:"weekly_office_schedule_is_active"`

	WeeklyOfficeScheduleCreatedAt time.Time `gorm:"column:weekly_office_schedule_created_at;autoCreateTime" json:"weekly_office_schedule_created_at"`
}

func (WeeklyOfficeScheduleModel) TableName() string { return "weekly_office_schedules" }
