// file: internals/features/attendance/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/attendance/attendance/dto"
	"absensiku_backend/internals/features/attendance/attendance/model"
	"absensiku_backend/internals/features/attendance/attendance/service"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/helpers/officetime"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

/* ===================== CHECK-IN ===================== */
// POST /api/attendance/check-in
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	staffID, err := helper.GetStaffIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := service.CheckIn(ctrl.DB, staffID, *req.Latitude, *req.Longitude,
		req.DeviceID, time.Now(), configs.OfficeLocation)
	switch {
	case errors.Is(err, service.ErrAlreadyCheckedIn):
		// Bukan kegagalan — pesan yang sama dengan portal lama.
		return helper.Success(c, "You have already checked in today. Kindly audit with conscience.", nil)
	case errors.Is(err, service.ErrWrongDevice),
		errors.Is(err, service.ErrDeviceReuse):
		return helper.Error(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Staff tidak ditemukan")
	case err != nil:
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan check-in")
	}

	return helper.Success(c, "Welcome. Kindly audit with conscience today.", result)
}

/* ===================== CHECK-OUT ===================== */
// POST /api/attendance/check-out
func (ctrl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	staffID, err := helper.GetStaffIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := service.CheckOut(ctrl.DB, staffID, *req.Latitude, *req.Longitude,
		time.Now(), configs.OfficeLocation)
	switch {
	case errors.Is(err, service.ErrNotCheckedIn):
		return helper.Success(c, "Not checked in today.", nil)
	case err != nil:
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan check-out")
	}

	return helper.Success(c, "Checked out successfully.", result)
}

/* ===================== SUMMARY ===================== */
// GET /api/attendance/summary — ringkasan minggu/bulan/tahun berjalan
func (ctrl *AttendanceController) Summary(c *fiber.Ctx) error {
	staffID, err := helper.GetStaffIDFromToken(c)
	if err != nil {
		return err
	}

	now := time.Now()
	loc := configs.OfficeLocation
	countSince := func(since time.Time) (int64, error) {
		var n int64
		err := ctrl.DB.Model(&model.AttendanceModel{}).
			Where("attendance_staff_id = ?", staffID).
			Where("attendance_date >= ?", since).
			Count(&n).Error
		return n, err
	}

	week, err := countSince(officetime.WeekStart(now, loc))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}
	month, err := countSince(officetime.MonthStart(now, loc))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}
	year, err := countSince(officetime.YearStart(now, loc))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}

	return helper.Success(c, "OK", dto.SummaryResponse{
		WeekAttendance:  week,
		MonthAttendance: month,
		YearAttendance:  year,
	})
}

/* ===================== HISTORY ===================== */
// GET /api/attendance/history
func (ctrl *AttendanceController) History(c *fiber.Ctx) error {
	staffID, err := helper.GetStaffIDFromToken(c)
	if err != nil {
		return err
	}

	var records []model.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_staff_id = ?", staffID).
		Order("attendance_date DESC").
		Find(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}

	return helper.Success(c, "OK", dto.NewAttendanceResponses(records))
}
