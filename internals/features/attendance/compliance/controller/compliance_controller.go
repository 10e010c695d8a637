// file: internals/features/attendance/compliance/controller/compliance_controller.go
package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/constants"
	attendanceModel "absensiku_backend/internals/features/attendance/attendance/model"
	"absensiku_backend/internals/features/attendance/compliance/service"
	staffModel "absensiku_backend/internals/features/users/staff/model"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/helpers/officetime"
)

type ComplianceController struct {
	DB *gorm.DB
}

func NewComplianceController(db *gorm.DB) *ComplianceController {
	return &ComplianceController{DB: db}
}

/* ===================== WEEKLY COMPLIANCE ===================== */
// GET /api/attendance/compliance?week_start=2025-07-13
// Tanpa query: pekan berjalan.
func (ctrl *ComplianceController) IsCompliant(c *fiber.Ctx) error {
	staffID, err := helper.GetStaffIDFromToken(c)
	if err != nil {
		return err
	}

	loc := configs.OfficeLocation
	weekStart := officetime.WeekStart(time.Now(), loc)
	if q := c.Query("week_start"); q != "" {
		parsed, err := time.ParseInLocation("2006-01-02", q, loc)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "week_start harus berformat YYYY-MM-DD")
		}
		weekStart = parsed
	}

	result, err := service.CheckWeeklyCompliance(ctrl.DB, staffID, weekStart, loc)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung kepatuhan")
	}
	return helper.Success(c, "OK", result)
}

/* ===================== MONTHLY XLSX EXPORT (ADMIN) ===================== */
// GET /api/admin/reports/monthly?month=2025-07
func (ctrl *ComplianceController) ExportMonthlyReport(c *fiber.Ctx) error {
	loc := configs.OfficeLocation

	monthStr := c.Query("month", time.Now().In(loc).Format(constants.MonthTokenLayout))
	month, err := time.ParseInLocation(constants.MonthTokenLayout, monthStr, loc)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "month harus berformat YYYY-MM")
	}
	monthStart := month
	monthEnd := month.AddDate(0, 1, 0)

	var roster []staffModel.StaffModel
	if err := ctrl.DB.Order("staff_name ASC").Find(&roster).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil roster")
	}

	type rowCount struct {
		StaffID string
		Status  string
		N       int64
	}
	var counts []rowCount
	if err := ctrl.DB.Model(&attendanceModel.AttendanceModel{}).
		Select("attendance_staff_id AS staff_id, attendance_status AS status, COUNT(*) AS n").
		Where("attendance_date >= ? AND attendance_date < ?", monthStart, monthEnd).
		Group("attendance_staff_id, attendance_status").
		Find(&counts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengagregasi attendance")
	}

	byStaff := make(map[string]map[string]int64)
	for _, rc := range counts {
		if byStaff[rc.StaffID] == nil {
			byStaff[rc.StaffID] = make(map[string]int64)
		}
		byStaff[rc.StaffID][rc.Status] = rc.N
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Rekap"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat sheet")
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheet, "A1", fmt.Sprintf("LAPORAN KEHADIRAN %s", monthStr))
	f.MergeCell(sheet, "A1", "G1")
	f.SetCellStyle(sheet, "A1", "G1", headerStyle)

	headers := []string{"Nama", "Email", "Present", "Late", "Absent", "Permission", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A3", "G3", headerStyle)

	for r, staff := range roster {
		row := r + 4
		get := func(status string) int64 {
			return byStaff[staff.StaffID.String()][status]
		}
		values := []interface{}{
			staff.StaffName,
			staff.StaffEmail,
			get(constants.AttendanceStatusPresent),
			get(constants.AttendanceStatusLate),
			get(constants.AttendanceStatusAbsent),
			get(constants.AttendanceStatusPermission),
			staff.StaffStatus,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menulis file")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="attendance-%s.xlsx"`, monthStr))
	return c.Send(buf.Bytes())
}
