package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "absensiku_backend/internals/features/attendance/attendance/controller"
	complianceController "absensiku_backend/internals/features/attendance/compliance/controller"
	scheduleController "absensiku_backend/internals/features/attendance/schedule/controller"
	staffController "absensiku_backend/internals/features/users/staff/controller"
)

// AdminRoutes: endpoint manajemen (sudah lewat AdminJWT).
func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	staffCtrl := staffController.NewStaffAdminController(db)
	attCtrl := attendanceController.NewAttendanceController(db)
	schCtrl := scheduleController.NewScheduleController(db)
	compCtrl := complianceController.NewComplianceController(db)

	// Staff management
	admin.Post("/staff", staffCtrl.AddStaff)
	admin.Get("/staff", staffCtrl.StaffList)
	admin.Delete("/staff/:id", staffCtrl.DeleteStaff)
	admin.Post("/staff/:id/permission", staffCtrl.GrantPermission)
	admin.Get("/permissions", staffCtrl.ListPermissions)
	admin.Get("/dashboard", staffCtrl.Dashboard)

	// Attendance views & koreksi
	admin.Get("/staff/:id/attendance", attCtrl.StaffAttendance)
	admin.Get("/present-today", attCtrl.PresentToday)
	admin.Patch("/attendance/:id", attCtrl.OverrideAttendance)

	// Schedules
	admin.Post("/schedules", schCtrl.BulkCreate)
	admin.Get("/schedules/:staff_id", schCtrl.GetForStaff)
	admin.Put("/weekly-schedule", schCtrl.SetWeeklySchedule)
	admin.Get("/weekly-schedule", schCtrl.GetWeeklySchedule)

	// Reports
	admin.Get("/reports/monthly", compCtrl.ExportMonthlyReport)
}
