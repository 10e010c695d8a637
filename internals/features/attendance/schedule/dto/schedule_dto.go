// file: internals/features/attendance/schedule/dto/schedule_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "absensiku_backend/internals/features/attendance/schedule/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateScheduleRequest struct {
	StaffID   uuid.UUID `json:"staff_id"   validate:"required,uuid4"`
	StartDate string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string    `json:"end_date"   validate:"required,datetime=2006-01-02"`

	DaysPerWeek   *int     `json:"days_per_week"  validate:"omitempty,min=1,max=7"`
	AssignedDates []string `json:"assigned_dates" validate:"omitempty,dive,datetime=2006-01-02"`
}

// BulkCreateScheduleRequest: satu operasi admin bisa menjadwalkan banyak
// staff sekaligus; tiap entri menggantikan jadwal lama yang overlap.
type BulkCreateScheduleRequest struct {
	Schedules []CreateScheduleRequest `json:"schedules" validate:"required,min=1,dive"`
}

type SetWeeklyScheduleRequest struct {
	Days []string `json:"days" validate:"required,min=1,max=7,dive,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`

	WeekStart *string `json:"week_start" validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type ScheduleResponse struct {
	ScheduleID      uuid.UUID `json:"schedule_id"`
	ScheduleStaffID uuid.UUID `json:"schedule_staff_id"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	DaysPerWeek     *int      `json:"days_per_week,omitempty"`
	AssignedDates   []string  `json:"assigned_dates,omitempty"`
}

func NewScheduleResponse(mdl m.ScheduleModel) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID:      mdl.ScheduleID,
		ScheduleStaffID: mdl.ScheduleStaffID,
		StartDate:       mdl.ScheduleStartDate,
		EndDate:         mdl.ScheduleEndDate,
		DaysPerWeek:     mdl.ScheduleDaysPerWeek,
		AssignedDates:   mdl.ScheduleAssignedDates,
	}
}

func (r CreateScheduleRequest) ToModel(loc *time.Location) (*m.ScheduleModel, error) {
	start, err := time.ParseInLocation("2006-01-02", r.StartDate, loc)
	if err != nil {
		return nil, err
	}
	end, err := time.ParseInLocation("2006-01-02", r.EndDate, loc)
	if err != nil {
		return nil, err
	}
	return &m.ScheduleModel{
		ScheduleStaffID:       r.StaffID,
		ScheduleStartDate:     start,
		ScheduleEndDate:       end,
		ScheduleDaysPerWeek:   r.DaysPerWeek,
		ScheduleAssignedDates: datatypes.NewJSONSlice(r.AssignedDates),
	}, nil
}
