// file: internals/features/attendance/scheduler/scheduler.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	complianceService "absensiku_backend/internals/features/attendance/compliance/service"
)

// NextRunAt menghitung trigger wall-clock berikutnya untuk jam:menit lokal.
// Bila jam hari ini sudah lewat, jatuh ke besok.
func NextRunAt(now time.Time, hour, minute int, loc *time.Location) time.Time {
	lt := now.In(loc)
	next := time.Date(lt.Year(), lt.Month(), lt.Day(), hour, minute, 0, 0, loc)
	if !next.After(lt) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func runDailyAt(name string, hour, minute int, loc *time.Location, job func(now time.Time)) {
	go func() {
		for {
			next := NextRunAt(time.Now(), hour, minute, loc)
			log.Printf("[%s] Jadwal berikutnya: %s", name, next.Format(time.RFC3339))
			time.Sleep(time.Until(next))

			func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("[%s] ❌ panic: %v", name, r)
					}
				}()
				job(time.Now())
			}()
		}
	}()
}

// StartEndOfDaySweeper menjalankan sweep tutup hari tiap 17:05 waktu kantor.
func StartEndOfDaySweeper(db *gorm.DB, loc *time.Location) {
	runDailyAt("SWEEP", 17, 5, loc, func(now time.Time) {
		RunEndOfDaySweep(db, now, loc)
	})
}

// StartDailyReportScheduler mengirim laporan harian tiap 18:00 waktu kantor.
func StartDailyReportScheduler(db *gorm.DB, loc *time.Location) {
	runDailyAt("REPORT", 18, 0, loc, func(now time.Time) {
		RunDailyReport(db, now, loc)
	})
}

// StartMonthlyEmailScheduler memeriksa eskalasi absensi tiap hari 12:05.
// Gating "sekali per bulan" ada di marker warning/query, jadi pemeriksaan
// harian aman dari dobel kirim.
func StartMonthlyEmailScheduler(db *gorm.DB, loc *time.Location) {
	runDailyAt("MONTHLY", 12, 5, loc, func(now time.Time) {
		log.Println("[MONTHLY] 📧 Menjalankan pemeriksaan eskalasi absensi...")
		complianceService.RunMonthlySweep(db, now, loc)
		log.Println("[MONTHLY] ✅ Selesai.")
	})
}
