// file: internals/features/attendance/attendance/controller/admin_attendance_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/attendance/attendance/dto"
	"absensiku_backend/internals/features/attendance/attendance/model"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/helpers/officetime"
)

/* ===================== STAFF ATTENDANCE (ADMIN) ===================== */
// GET /api/admin/staff/:id/attendance
func (ctrl *AttendanceController) StaffAttendance(c *fiber.Ctx) error {
	staffID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "staff id tidak valid")
	}

	var records []model.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_staff_id = ?", staffID).
		Order("attendance_date DESC").
		Find(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil attendance")
	}
	return helper.Success(c, "OK", dto.NewAttendanceResponses(records))
}

/* ===================== PRESENT TODAY (ADMIN) ===================== */
// GET /api/admin/present-today
func (ctrl *AttendanceController) PresentToday(c *fiber.Ctx) error {
	today := officetime.DayStart(time.Now(), configs.OfficeLocation)

	var records []model.AttendanceModel
	if err := ctrl.DB.Preload("Staff").
		Where("attendance_date = ?", today).
		Where("attendance_check_in IS NOT NULL").
		Find(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil attendance")
	}

	type presentRow struct {
		StaffID     uuid.UUID  `json:"staff_id"`
		Name        string     `json:"name"`
		Email       string     `json:"email"`
		Office      string     `json:"office"`
		Status      string     `json:"status"`
		CheckInTime *time.Time `json:"check_in_time"`
		Latitude    *float64   `json:"latitude"`
		Longitude   *float64   `json:"longitude"`
	}
	out := make([]presentRow, 0, len(records))
	for i := range records {
		r := &records[i]
		row := presentRow{
			StaffID:     r.AttendanceStaffID,
			Office:      r.AttendanceOfficeName,
			Status:      r.AttendanceStatus,
			CheckInTime: r.AttendanceCheckIn,
			Latitude:    r.AttendanceLatitude,
			Longitude:   r.AttendanceLongitude,
		}
		if r.Staff != nil {
			row.Name = r.Staff.StaffName
			row.Email = r.Staff.StaffEmail
		}
		out = append(out, row)
	}
	return helper.Success(c, "OK", out)
}

/* ===================== OVERRIDE (ADMIN) ===================== */
// PATCH /api/admin/attendance/:id — koreksi status harian oleh admin,
// dengan jejak siapa/kapan/kenapa.
func (ctrl *AttendanceController) OverrideAttendance(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}

	attendanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "attendance id tidak valid")
	}

	var req dto.OverrideAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var record model.AttendanceModel
	if err := ctrl.DB.Where("attendance_id = ?", attendanceID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Attendance tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil attendance")
	}

	now := time.Now()
	if err := ctrl.DB.Model(&model.AttendanceModel{}).
		Where("attendance_id = ?", attendanceID).
		Updates(map[string]interface{}{
			"attendance_status":            req.Status,
			"attendance_overridden":        true,
			"attendance_override_admin_id": adminID,
			"attendance_override_reason":   req.Reason,
			"attendance_override_at":       now,
		}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan override")
	}

	record.AttendanceStatus = req.Status
	record.AttendanceOverridden = true
	return helper.Success(c, "Attendance dikoreksi", dto.NewAttendanceResponse(record))
}
