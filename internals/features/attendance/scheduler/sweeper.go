// file: internals/features/attendance/scheduler/sweeper.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"absensiku_backend/internals/constants"
	attendanceModel "absensiku_backend/internals/features/attendance/attendance/model"
	scheduleService "absensiku_backend/internals/features/attendance/schedule/service"
	staffModel "absensiku_backend/internals/features/users/staff/model"
	staffService "absensiku_backend/internals/features/users/staff/service"
	"absensiku_backend/internals/helpers/officetime"
)

// RunEndOfDaySweep menjalankan rekonsiliasi tutup hari:
//  a. pembersihan permission kedaluwarsa untuk seluruh roster, terlepas
//     dari jadwal;
//  b. staff terjadwal hari ini tanpa record sama sekali → dibuatkan record
//     Absent (no-op bila belum jam 17:00 lokal);
//  c. record dengan check-in >= 17:00 dipastikan berstatus Absent
//     (jaring pengaman bila klasifikasi live terlewati).
//
// Urutannya penting: expiry jalan DULUAN supaya staff yang permission-nya
// berakhir kemarin sudah kembali Active saat backfill mengambil roster —
// kalau dibalik, staff itu lolos dari filter Active dan hari ini tidak
// tercatat Absent.
//
// Aman dipanggil lebih dari sekali untuk hari yang sama: backfill memakai
// unique index yang sama dengan check-in, reklasifikasi idempoten.
func RunEndOfDaySweep(db *gorm.DB, now time.Time, loc *time.Location) {
	log.Println("[SWEEP] Menjalankan end-of-day sweep...")

	cleared := staffService.ExpireStaleForRoster(db, now)
	log.Printf("[SWEEP] Permission kedaluwarsa dibersihkan: %d", cleared)

	if officetime.AfterClose(now, loc) {
		backfillAbsences(db, now, loc)
		reclassifyAfterClose(db, now, loc)
	} else {
		log.Println("[SWEEP] Belum jam tutup kantor, backfill dilewati")
	}

	log.Println("[SWEEP] ✅ Selesai.")
}

func backfillAbsences(db *gorm.DB, now time.Time, loc *time.Location) {
	var roster []staffModel.StaffModel
	if err := db.Where("staff_status = ?", constants.StaffStatusActive).Find(&roster).Error; err != nil {
		log.Printf("[SWEEP] ❌ Gagal ambil roster: %v", err)
		return
	}

	day := officetime.DayStart(now, loc)
	created := 0
	for i := range roster {
		staff := &roster[i]

		scheduled, err := scheduleService.IsScheduledToday(db, staff.StaffID, now, loc)
		if err != nil {
			log.Printf("[SWEEP] ❌ Gagal resolve jadwal %s: %v", staff.StaffEmail, err)
			continue
		}
		if !scheduled {
			continue
		}

		record := attendanceModel.AttendanceModel{
			AttendanceStaffID:        staff.StaffID,
			AttendanceDate:           day,
			AttendanceOfficeName:     "Unknown Location",
			AttendanceLocationStatus: constants.LocationUnknown,
			AttendanceStatus:         constants.AttendanceStatusAbsent,
		}
		res := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_staff_id"},
				{Name: "attendance_date"},
			},
			DoNothing: true,
		}).Create(&record)
		if res.Error != nil {
			log.Printf("[SWEEP] ❌ Gagal backfill %s: %v", staff.StaffEmail, res.Error)
			continue
		}
		if res.RowsAffected > 0 {
			created++
		}
	}
	log.Printf("[SWEEP] Backfill Absent: %d record", created)
}

func reclassifyAfterClose(db *gorm.DB, now time.Time, loc *time.Location) {
	day := officetime.DayStart(now, loc)
	closeAt := day.Add(time.Duration(constants.OfficeCloseHour) * time.Hour)

	res := db.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_date = ?", day).
		Where("attendance_check_in >= ?", closeAt).
		Where("attendance_status <> ?", constants.AttendanceStatusAbsent).
		Update("attendance_status", constants.AttendanceStatusAbsent)
	if res.Error != nil {
		log.Printf("[SWEEP] ❌ Gagal reklasifikasi after-close: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[SWEEP] Reklasifikasi check-in >= 17:00 jadi Absent: %d record", res.RowsAffected)
	}
}
