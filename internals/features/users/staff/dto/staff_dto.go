// file: internals/features/users/staff/dto/staff_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "absensiku_backend/internals/features/users/staff/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type AddStaffRequest struct {
	Name  string `json:"name"  validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
}

type GrantPermissionRequest struct {
	Type      string `json:"type"       validate:"required,oneof=Leave Official Sickness Emergency Suspension"`
	Reason    string `json:"reason"     validate:"omitempty,max=500"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type StaffResponse struct {
	StaffID             uuid.UUID  `json:"staff_id"`
	StaffName           string     `json:"staff_name"`
	StaffEmail          string     `json:"staff_email"`
	StaffStatus         string     `json:"staff_status"`
	StaffMonthlyAbsence int        `json:"staff_monthly_absence"`
	PermissionType      *string    `json:"permission_type,omitempty"`
	PermissionStart     *time.Time `json:"permission_start,omitempty"`
	PermissionEnd       *time.Time `json:"permission_end,omitempty"`
}

func NewStaffResponse(mdl m.StaffModel) StaffResponse {
	return StaffResponse{
		StaffID:             mdl.StaffID,
		StaffName:           mdl.StaffName,
		StaffEmail:          mdl.StaffEmail,
		StaffStatus:         mdl.StaffStatus,
		StaffMonthlyAbsence: mdl.StaffMonthlyAbsence,
		PermissionType:      mdl.StaffPermissionType,
		PermissionStart:     mdl.StaffPermissionStart,
		PermissionEnd:       mdl.StaffPermissionEnd,
	}
}

func NewStaffResponses(mdls []m.StaffModel) []StaffResponse {
	out := make([]StaffResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, NewStaffResponse(mdl))
	}
	return out
}

type DashboardResponse struct {
	TotalStaff     int64          `json:"total_staff"`
	PresentToday   int64          `json:"present_today"`
	AbsentToday    int64          `json:"absent_today"`
	Suspended      int64          `json:"suspended"`
	OnLeave        int64          `json:"on_leave"`
	OnSick         int64          `json:"on_sick"`
	OnOfficialDuty int64          `json:"on_official_duty"`
	MostPresent    *StaffResponse `json:"most_present,omitempty"`
	MostAbsent     *StaffResponse `json:"most_absent,omitempty"`
}
