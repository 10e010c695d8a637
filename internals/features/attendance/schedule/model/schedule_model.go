package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	staffModel "absensiku_backend/internals/features/users/staff/model"
)

// ScheduleModel adalah jadwal per-staff: rentang tanggal dengan daftar
// tanggal kehadiran eksplisit ("2006-01-02") atau kuota hari per minggu.
// Jadwal baru yang overlap menggantikan yang lama (replace, bukan merge).
type ScheduleModel struct {
	ScheduleID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:schedule_id" json:"schedule_id"`
	ScheduleStaffID uuid.UUID `gorm:"type:uuid;not null;index;column:schedule_staff_id" json:"schedule_staff_id"`

	ScheduleStartDate time.Time `gorm:"type:date;not null;column:schedule_start_date" json:"schedule_start_date"`
	ScheduleEndDate   time.Time `gorm:"type:date;not null;column:schedule_end_date"   json:"schedule_end_date"`

	ScheduleDaysPerWeek   *int                         `gorm:"column:schedule_days_per_week" json:"schedule_days_per_week,omitempty"`
	ScheduleAssignedDates datatypes.JSONSlice[string] `gorm:"column:schedule_assigned_dates" json:"schedule_assigned_dates,omitempty"`

	ScheduleCreatedAt time.Time `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`

	Staff *staffModel.StaffModel `gorm:"foreignKey:ScheduleStaffID;references:StaffID;constraint:OnDelete:CASCADE" json:"staff,omitempty"`
}

func (ScheduleModel) TableName() string { return "schedules" }
