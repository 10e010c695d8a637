// file: internals/features/attendance/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "absensiku_backend/internals/features/attendance/attendance/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CheckInRequest struct {
	Latitude  *float64 `json:"latitude"  validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	DeviceID  string   `json:"device_id" validate:"required,max=200"`
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude"  validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

type OverrideAttendanceRequest struct {
	Status string `json:"status" validate:"required,oneof=Present Late Absent Permission"`
	Reason string `json:"reason" validate:"required,max=500"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AttendanceResponse struct {
	AttendanceID             uuid.UUID  `json:"attendance_id"`
	AttendanceStaffID        uuid.UUID  `json:"attendance_staff_id"`
	AttendanceDate           time.Time  `json:"attendance_date"`
	AttendanceCheckIn        *time.Time `json:"attendance_check_in,omitempty"`
	AttendanceCheckOut       *time.Time `json:"attendance_check_out,omitempty"`
	AttendanceOfficeName     string     `json:"attendance_office_name"`
	AttendanceLocationStatus string     `json:"attendance_location_status"`
	AttendanceStatus         string     `json:"attendance_status"`
	AttendanceOverridden     bool       `json:"attendance_overridden"`
}

func NewAttendanceResponse(mdl m.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:             mdl.AttendanceID,
		AttendanceStaffID:        mdl.AttendanceStaffID,
		AttendanceDate:           mdl.AttendanceDate,
		AttendanceCheckIn:        mdl.AttendanceCheckIn,
		AttendanceCheckOut:       mdl.AttendanceCheckOut,
		AttendanceOfficeName:     mdl.AttendanceOfficeName,
		AttendanceLocationStatus: mdl.AttendanceLocationStatus,
		AttendanceStatus:         mdl.AttendanceStatus,
		AttendanceOverridden:     mdl.AttendanceOverridden,
	}
}

func NewAttendanceResponses(mdls []m.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, NewAttendanceResponse(mdl))
	}
	return out
}

type SummaryResponse struct {
	WeekAttendance  int64 `json:"week_attendance"`
	MonthAttendance int64 `json:"month_attendance"`
	YearAttendance  int64 `json:"year_attendance"`
}
