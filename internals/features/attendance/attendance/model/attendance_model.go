package model

import (
	"time"

	"github.com/google/uuid"

	staffModel "absensiku_backend/internals/features/users/staff/model"
)

type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceStaffID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_staff_date;column:attendance_staff_id" json:"attendance_staff_id"`

	// Hari kalender lokal kantor. Unique bareng staff_id: satu record per
	// staff per hari ditegakkan di level storage, bukan query-then-insert.
	AttendanceDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_staff_date;column:attendance_date" json:"attendance_date"`

	AttendanceCheckIn  *time.Time `gorm:"column:attendance_check_in"  json:"attendance_check_in,omitempty"`
	AttendanceCheckOut *time.Time `gorm:"column:attendance_check_out" json:"attendance_check_out,omitempty"`

	AttendanceLatitude  *float64 `gorm:"column:attendance_latitude"  json:"attendance_latitude,omitempty"`
	AttendanceLongitude *float64 `gorm:"column:attendance_longitude" json:"attendance_longitude,omitempty"`

	AttendanceOfficeName     string `gorm:"column:attendance_office_name" json:"attendance_office_name"`
	AttendanceLocationStatus string `gorm:"not null;default:'Unknown';column:attendance_location_status" json:"attendance_location_status"`

	// Present | Late | Absent | Permission — final per hari, hanya boleh
	// dikoreksi oleh sweep sore atau override admin.
	AttendanceStatus string `gorm:"not null;column:attendance_status" json:"attendance_status"`

	AttendanceDeviceID *string `gorm:"column:attendance_device_id" json:"attendance_device_id,omitempty"`

	// Jejak override admin
	AttendanceOverridden      bool       `gorm:"not null;default:false;column:attendance_overridden" json:"attendance_overridden"`
	AttendanceOverrideAdminID *uuid.UUID `gorm:"type:uuid;column:attendance_override_admin_id" json:"attendance_override_admin_id,omitempty"`
	AttendanceOverrideReason  *string    `gorm:"column:attendance_override_reason" json:"attendance_override_reason,omitempty"`
	AttendanceOverrideAt      *time.Time `gorm:"column:attendance_override_at" json:"attendance_override_at,omitempty"`

	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`

	// Hapus staff ikut menghapus seluruh attendance-nya.
	Staff *staffModel.StaffModel `gorm:"foreignKey:AttendanceStaffID;references:StaffID;constraint:OnDelete:CASCADE" json:"staff,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }
