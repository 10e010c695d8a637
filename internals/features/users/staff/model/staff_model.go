package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"absensiku_backend/internals/constants"
)

// StaffPermission adalah izin override (cuti/dinas/sakit/darurat/skorsing)
// yang menggantikan aturan kehadiran normal selama window-nya aktif.
type StaffPermission struct {
	Type      string    `json:"type"`
	Reason    string    `json:"reason,omitempty"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type StaffModel struct {
	StaffID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:staff_id" json:"staff_id"`
	StaffName     string    `gorm:"not null;column:staff_name" json:"staff_name"`
	StaffEmail    string    `gorm:"uniqueIndex;not null;column:staff_email" json:"staff_email"`
	StaffPassword string    `gorm:"not null;column:staff_password" json:"-"`

	StaffStatus string `gorm:"not null;default:'Active';column:staff_status" json:"staff_status"`

	// Permission aktif (paling banyak satu). NULL semua = tidak ada.
	StaffPermissionType   *string    `gorm:"column:staff_permission_type"   json:"staff_permission_type,omitempty"`
	StaffPermissionReason *string    `gorm:"column:staff_permission_reason" json:"staff_permission_reason,omitempty"`
	StaffPermissionStart  *time.Time `gorm:"column:staff_permission_start"  json:"staff_permission_start,omitempty"`
	StaffPermissionEnd    *time.Time `gorm:"column:staff_permission_end"    json:"staff_permission_end,omitempty"`

	// Riwayat permission yang sudah berakhir (array JSON StaffPermission).
	StaffPermissionsHistory datatypes.JSON `gorm:"column:staff_permissions_history" json:"staff_permissions_history,omitempty"`

	// Device id diikat saat check-in pertama, dipakai sebagai sidik
	// anti-titip-absen. Unique di level storage: dua first check-in nyaris
	// bersamaan dari device yang sama tidak bisa terikat ke dua staff.
	StaffDeviceID *string `gorm:"uniqueIndex;column:staff_device_id" json:"staff_device_id,omitempty"`

	StaffMonthlyAbsence int `gorm:"not null;default:0;column:staff_monthly_absence" json:"staff_monthly_absence"`

	// Marker "YYYY-MM": menjamin maksimal satu email per kategori per bulan.
	StaffWarningSentMonth *string `gorm:"column:staff_warning_sent_month" json:"staff_warning_sent_month,omitempty"`
	StaffQuerySentMonth   *string `gorm:"column:staff_query_sent_month"   json:"staff_query_sent_month,omitempty"`

	StaffCreatedAt time.Time  `gorm:"column:staff_created_at;autoCreateTime" json:"staff_created_at"`
	StaffUpdatedAt *time.Time `gorm:"column:staff_updated_at;autoUpdateTime" json:"staff_updated_at,omitempty"`
}

func (StaffModel) TableName() string { return "staffs" }

// CurrentPermission mengembalikan permission aktif, atau nil bila kolomnya kosong.
func (s *StaffModel) CurrentPermission() *StaffPermission {
	if s.StaffPermissionType == nil || s.StaffPermissionStart == nil || s.StaffPermissionEnd == nil {
		return nil
	}
	p := StaffPermission{
		Type:      *s.StaffPermissionType,
		StartDate: *s.StaffPermissionStart,
		EndDate:   *s.StaffPermissionEnd,
	}
	if s.StaffPermissionReason != nil {
		p.Reason = *s.StaffPermissionReason
	}
	return &p
}

// SetPermission mengganti permission aktif dan menyetel status sesuai tipenya.
func (s *StaffModel) SetPermission(p StaffPermission) {
	s.StaffPermissionType = &p.Type
	s.StaffPermissionStart = &p.StartDate
	s.StaffPermissionEnd = &p.EndDate
	if p.Reason != "" {
		s.StaffPermissionReason = &p.Reason
	} else {
		s.StaffPermissionReason = nil
	}
	s.StaffStatus = constants.StatusForPermission(p.Type)
}

// ClearPermission memindahkan permission aktif ke riwayat dan mengembalikan
// status ke Active. No-op bila tidak ada permission.
func (s *StaffModel) ClearPermission() {
	p := s.CurrentPermission()
	if p == nil {
		return
	}

	var history []StaffPermission
	if len(s.StaffPermissionsHistory) > 0 {
		_ = json.Unmarshal(s.StaffPermissionsHistory, &history)
	}
	history = append(history, *p)
	if raw, err := json.Marshal(history); err == nil {
		s.StaffPermissionsHistory = datatypes.JSON(raw)
	}

	s.StaffPermissionType = nil
	s.StaffPermissionReason = nil
	s.StaffPermissionStart = nil
	s.StaffPermissionEnd = nil
	s.StaffStatus = constants.StaffStatusActive
}
