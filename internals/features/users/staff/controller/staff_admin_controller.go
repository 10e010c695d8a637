// file: internals/features/users/staff/controller/staff_admin_controller.go
package controller

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/constants"
	attendanceModel "absensiku_backend/internals/features/attendance/attendance/model"
	"absensiku_backend/internals/features/users/staff/dto"
	"absensiku_backend/internals/features/users/staff/model"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/helpers/officetime"
	"absensiku_backend/internals/mailer"
)

type StaffAdminController struct {
	DB *gorm.DB
}

func NewStaffAdminController(db *gorm.DB) *StaffAdminController {
	return &StaffAdminController{DB: db}
}

var validate = validator.New()

/* ===================== ADD STAFF ===================== */
// POST /api/admin/staff
func (ctrl *StaffAdminController) AddStaff(c *fiber.Ctx) error {
	var req dto.AddStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.StaffModel
	err := ctrl.DB.Where("staff_email = ?", req.Email).First(&existing).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Staff already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa email")
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat password sementara")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	staff := model.StaffModel{
		StaffName:     req.Name,
		StaffEmail:    req.Email,
		StaffPassword: string(hashed),
		StaffStatus:   constants.StaffStatusActive,
	}
	if err := ctrl.DB.Create(&staff).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat staff")
	}

	// Kegagalan email tidak membatalkan pembuatan akun.
	mailer.SendAsync([]string{req.Email}, "Attendance Portal - Your Login Details", fmt.Sprintf(`
    <h3>Welcome to Red Auditor Attendance Portal</h3>
    <p>Dear %s, your account has been created.</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Temporary Password:</strong> %s</p>
    <p>Please login and change your password.</p>
  `, req.Name, req.Email, tempPassword))

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Staff created and email sent", dto.NewStaffResponse(staff))
}

func generateTempPassword() (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

/* ===================== STAFF LIST ===================== */
// GET /api/admin/staff
func (ctrl *StaffAdminController) StaffList(c *fiber.Ctx) error {
	var roster []model.StaffModel
	if err := ctrl.DB.Order("staff_name ASC").Find(&roster).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil staff")
	}
	return helper.Success(c, "OK", dto.NewStaffResponses(roster))
}

/* ===================== DELETE STAFF ===================== */
// DELETE /api/admin/staff/:id — attendance ikut terhapus (cascade)
func (ctrl *StaffAdminController) DeleteStaff(c *fiber.Ctx) error {
	staffID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "staff id tidak valid")
	}

	res := ctrl.DB.Where("staff_id = ?", staffID).Delete(&model.StaffModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus staff")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Staff tidak ditemukan")
	}
	return helper.Success(c, "Staff dihapus", nil)
}

/* ===================== GRANT PERMISSION ===================== */
// POST /api/admin/staff/:id/permission
func (ctrl *StaffAdminController) GrantPermission(c *fiber.Ctx) error {
	staffID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "staff id tidak valid")
	}

	var req dto.GrantPermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	loc := configs.OfficeLocation
	start, err := time.ParseInLocation("2006-01-02", req.StartDate, loc)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "start_date tidak valid")
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, loc)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "end_date tidak valid")
	}
	// endDate inklusif sampai akhir hari
	end = end.AddDate(0, 0, 1).Add(-time.Second)
	if end.Before(start) {
		return helper.Error(c, fiber.StatusBadRequest, "end_date sebelum start_date")
	}

	var staff model.StaffModel
	if err := ctrl.DB.Where("staff_id = ?", staffID).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Staff tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil staff")
	}

	staff.SetPermission(model.StaffPermission{
		Type:      req.Type,
		Reason:    req.Reason,
		StartDate: start,
		EndDate:   end,
	})
	if err := ctrl.DB.Model(&model.StaffModel{}).
		Where("staff_id = ?", staff.StaffID).
		Updates(map[string]interface{}{
			"staff_permission_type":   staff.StaffPermissionType,
			"staff_permission_reason": staff.StaffPermissionReason,
			"staff_permission_start":  staff.StaffPermissionStart,
			"staff_permission_end":    staff.StaffPermissionEnd,
			"staff_status":            staff.StaffStatus,
		}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan permission")
	}

	return helper.Success(c, "Permission granted successfully", dto.NewStaffResponse(staff))
}

/* ===================== PERMISSIONS LIST ===================== */
// GET /api/admin/permissions
func (ctrl *StaffAdminController) ListPermissions(c *fiber.Ctx) error {
	var roster []model.StaffModel
	if err := ctrl.DB.
		Where("staff_permission_type IS NOT NULL").
		Find(&roster).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil permissions")
	}
	return helper.Success(c, "OK", dto.NewStaffResponses(roster))
}

/* ===================== DASHBOARD ===================== */
// GET /api/admin/dashboard
func (ctrl *StaffAdminController) Dashboard(c *fiber.Ctx) error {
	loc := configs.OfficeLocation
	today := officetime.DayStart(time.Now(), loc)

	var out dto.DashboardResponse

	if err := ctrl.DB.Model(&model.StaffModel{}).Count(&out.TotalStaff).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung staff")
	}

	if err := ctrl.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_date = ?", today).
		Where("attendance_check_in IS NOT NULL").
		Distinct("attendance_staff_id").
		Count(&out.PresentToday).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung kehadiran")
	}
	out.AbsentToday = out.TotalStaff - out.PresentToday

	countStatus := func(status string, dst *int64) error {
		return ctrl.DB.Model(&model.StaffModel{}).
			Where("staff_status = ?", status).Count(dst).Error
	}
	if err := countStatus(constants.StaffStatusSuspended, &out.Suspended); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung status")
	}
	if err := countStatus(constants.StaffStatusOnLeave, &out.OnLeave); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung status")
	}
	if err := countStatus(constants.StaffStatusSick, &out.OnSick); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung status")
	}
	if err := countStatus(constants.StaffStatusOnOfficialDuty, &out.OnOfficialDuty); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung status")
	}

	// Staff paling rajin & paling sering absen, dari agregasi attendance.
	type countRow struct {
		StaffID uuid.UUID
		N       int64
	}
	var rows []countRow
	if err := ctrl.DB.Model(&attendanceModel.AttendanceModel{}).
		Select("attendance_staff_id AS staff_id, COUNT(*) AS n").
		Where("attendance_status IN ?", []string{
			constants.AttendanceStatusPresent,
			constants.AttendanceStatusLate,
		}).
		Group("attendance_staff_id").
		Order("n DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal agregasi attendance")
	}
	if len(rows) > 0 {
		var most model.StaffModel
		if err := ctrl.DB.Where("staff_id = ?", rows[0].StaffID).First(&most).Error; err == nil {
			r := dto.NewStaffResponse(most)
			out.MostPresent = &r
		}
		var least model.StaffModel
		if err := ctrl.DB.Where("staff_id = ?", rows[len(rows)-1].StaffID).First(&least).Error; err == nil {
			r := dto.NewStaffResponse(least)
			out.MostAbsent = &r
		}
	}

	return helper.Success(c, "OK", out)
}
