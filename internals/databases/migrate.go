package database

import (
	"log"

	attendanceModel "absensiku_backend/internals/features/attendance/attendance/model"
	scheduleModel "absensiku_backend/internals/features/attendance/schedule/model"
	adminModel "absensiku_backend/internals/features/users/admin/model"
	staffModel "absensiku_backend/internals/features/users/staff/model"
)

// MigrateAll menjalankan auto-migration seluruh tabel. Urutan penting:
// staffs dulu karena attendances & schedules ber-FK ke sana.
func MigrateAll() {
	if err := DB.AutoMigrate(
		&staffModel.StaffModel{},
		&adminModel.AdminModel{},
		&attendanceModel.AttendanceModel{},
		&scheduleModel.ScheduleModel{},
		&scheduleModel.WeeklyOfficeScheduleModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}
