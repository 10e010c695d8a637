package details

import (
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	attendanceController "absensiku_backend/internals/features/attendance/attendance/controller"
	complianceController "absensiku_backend/internals/features/attendance/compliance/controller"
)

// AttendanceRoutes: endpoint self-service staff (sudah lewat StaffJWT).
func AttendanceRoutes(staff fiber.Router, db *gorm.DB) {
	attCtrl := attendanceController.NewAttendanceController(db)
	compCtrl := complianceController.NewComplianceController(db)

	staff.Post("/check-in", attCtrl.CheckIn)
	staff.Post("/check-out", attCtrl.CheckOut)
	staff.Get("/summary", attCtrl.Summary)
	staff.Get("/history", attCtrl.History)
	staff.Get("/compliance", compCtrl.IsCompliant)
}
