// file: internals/features/attendance/compliance/service/compliance_service.go
package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	attendanceModel "absensiku_backend/internals/features/attendance/attendance/model"
	scheduleService "absensiku_backend/internals/features/attendance/schedule/service"
	staffModel "absensiku_backend/internals/features/users/staff/model"
	staffService "absensiku_backend/internals/features/users/staff/service"
	"absensiku_backend/internals/helpers/officetime"
	"absensiku_backend/internals/mailer"
)

/* =========================================================
 * KEPUTUSAN ESKALASI (murni)
 * ========================================================= */

// EscalationPlan: email mana saja yang harus dikirim untuk satu staff di
// bulan berjalan. Kedua gate independen — warning dan query bisa terkirim
// di bulan yang sama, masing-masing maksimal sekali.
type EscalationPlan struct {
	SendWarning bool
	SendQuery   bool
}

// PlanEscalation menerapkan ambang 4 (warning) dan 6 (query), di-gate oleh
// marker "YYYY-MM" per kategori. Dipanggil ulang di bulan yang sama dengan
// marker yang sudah terisi → rencana kosong (idempoten).
func PlanEscalation(absences int, warningSentMonth, querySentMonth *string, monthToken string) EscalationPlan {
	var plan EscalationPlan
	if absences >= constants.AbsenceWarningThreshold &&
		(warningSentMonth == nil || *warningSentMonth != monthToken) {
		plan.SendWarning = true
	}
	if absences >= constants.AbsenceQueryThreshold &&
		(querySentMonth == nil || *querySentMonth != monthToken) {
		plan.SendQuery = true
	}
	return plan
}

func warningEmailHTML(name string) string {
	return fmt.Sprintf(`
  <h3>Hello %s,</h3>
  <p>You have been absent <strong>4 times</strong> this month.</p>
  <p>Please improve your punctuality and attendance.</p>
  <p>Recommended video: <a href="https://www.youtube.com/watch?v=Q3HcGp8n7JI">How to Improve Punctuality</a></p>
`, name)
}

func queryEmailHTML(name string) string {
	return fmt.Sprintf(`
  <h3>Hello %s,</h3>
  <p>You have been absent <strong>6 times</strong> this month.</p>
  <p>This is an official query. Contact HR immediately.</p>
`, name)
}

/* =========================================================
 * AGGREGATOR
 * ========================================================= */

// CountMonthlyAbsences menghitung record Absent staff sejak awal bulan lokal.
func CountMonthlyAbsences(db *gorm.DB, staffID uuid.UUID, now time.Time, loc *time.Location) (int64, error) {
	var count int64
	err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_staff_id = ?", staffID).
		Where("attendance_status = ?", constants.AttendanceStatusAbsent).
		Where("attendance_date >= ?", officetime.MonthStart(now, loc)).
		Count(&count).Error
	return count, err
}

// RunMonthlySweep memeriksa seluruh roster: hitung absen bulan berjalan,
// kirim warning/query sesuai ambang. Kirim-dulu-baru-stamp: marker bulanan
// hanya diisi setelah email sukses, jadi kegagalan kirim akan dicoba lagi
// di run berikutnya, dan run ulang di bulan yang sama tidak mengirim dobel.
// Kegagalan satu staff tidak menghentikan staff lain.
func RunMonthlySweep(db *gorm.DB, now time.Time, loc *time.Location) {
	monthToken := officetime.MonthToken(now, loc)

	var roster []staffModel.StaffModel
	if err := db.Find(&roster).Error; err != nil {
		log.Printf("[MONTHLY] ❌ Gagal ambil roster: %v", err)
		return
	}

	for i := range roster {
		staff := &roster[i]

		// Staff yang sedang dalam permission aktif dilewati.
		if staffService.IsUnderPermission(staff, now) {
			continue
		}

		absences, err := CountMonthlyAbsences(db, staff.StaffID, now, loc)
		if err != nil {
			log.Printf("[MONTHLY] ❌ Gagal hitung absen %s: %v", staff.StaffEmail, err)
			continue
		}

		plan := PlanEscalation(int(absences), staff.StaffWarningSentMonth, staff.StaffQuerySentMonth, monthToken)

		if plan.SendWarning {
			if err := mailer.SendEmail(
				[]string{staff.StaffEmail},
				"⚠️ Attendance Warning",
				warningEmailHTML(staff.StaffName),
			); err != nil {
				log.Printf("[MONTHLY] ❌ Warning ke %s gagal: %v", staff.StaffEmail, err)
			} else if err := db.Model(&staffModel.StaffModel{}).
				Where("staff_id = ?", staff.StaffID).
				Update("staff_warning_sent_month", monthToken).Error; err != nil {
				log.Printf("[MONTHLY] ❌ Gagal stamp warning %s: %v", staff.StaffEmail, err)
			}
		}

		if plan.SendQuery {
			recipients := append([]string{staff.StaffEmail}, constants.HRDistributionList...)
			if err := mailer.SendEmail(
				recipients,
				"🚨 Official Query: Excessive Absences",
				queryEmailHTML(staff.StaffName),
			); err != nil {
				log.Printf("[MONTHLY] ❌ Query ke %s gagal: %v", staff.StaffEmail, err)
			} else if err := db.Model(&staffModel.StaffModel{}).
				Where("staff_id = ?", staff.StaffID).
				Update("staff_query_sent_month", monthToken).Error; err != nil {
				log.Printf("[MONTHLY] ❌ Gagal stamp query %s: %v", staff.StaffEmail, err)
			}
		}
	}
}

/* =========================================================
 * WEEKLY COMPLIANCE CHECK
 * ========================================================= */

// WeeklyCompliance adalah hasil cek kepatuhan satu pekan.
type WeeklyCompliance struct {
	AttendanceCount int  `json:"attendance_count"`
	RequiredDays    int  `json:"required_days"`
	Compliant       bool `json:"compliant"`
}

// CheckWeeklyCompliance membandingkan kehadiran aktual (Present/Late) dalam
// pekan `weekStart` dengan ekspektasi hari kantor per minggu.
func CheckWeeklyCompliance(db *gorm.DB, staffID uuid.UUID, weekStart time.Time, loc *time.Location) (*WeeklyCompliance, error) {
	start := officetime.DayStart(weekStart, loc)
	end := start.AddDate(0, 0, 7)

	var count int64
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_staff_id = ?", staffID).
		Where("attendance_date >= ? AND attendance_date < ?", start, end).
		Where("attendance_status IN ?", []string{
			constants.AttendanceStatusPresent,
			constants.AttendanceStatusLate,
		}).
		Count(&count).Error; err != nil {
		return nil, err
	}

	required, err := scheduleService.RequiredDaysPerWeek(db, staffID, start, loc)
	if err != nil {
		return nil, err
	}

	return &WeeklyCompliance{
		AttendanceCount: int(count),
		RequiredDays:    required,
		Compliant:       int(count) >= required,
	}, nil
}
