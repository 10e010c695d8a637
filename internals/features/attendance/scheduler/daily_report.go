// file: internals/features/attendance/scheduler/daily_report.go
package scheduler

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	attendanceModel "absensiku_backend/internals/features/attendance/attendance/model"
	staffModel "absensiku_backend/internals/features/users/staff/model"
	"absensiku_backend/internals/helpers/officetime"
	"absensiku_backend/internals/mailer"
)

// ReportEntry adalah satu baris staff di laporan harian.
type ReportEntry struct {
	Name    string
	CheckIn time.Time
}

// BuildDailyReportHTML menyusun isi email laporan kehadiran harian.
func BuildDailyReportHTML(totalStaff, present, absent int, late, afterFive []ReportEntry) string {
	var b strings.Builder
	b.WriteString("<h2>📅 Daily Attendance Report</h2>\n")
	fmt.Fprintf(&b, "<p><strong>Total Staff:</strong> %d</p>\n", totalStaff)
	fmt.Fprintf(&b, "<p><strong>Present:</strong> %d</p>\n", present)
	fmt.Fprintf(&b, "<p><strong>Absent:</strong> %d</p>\n", absent)
	fmt.Fprintf(&b, "<p><strong>Late:</strong> %d</p>\n", len(late))
	fmt.Fprintf(&b, "<p><strong>Checked in after 5 PM:</strong> %d</p>\n", len(afterFive))

	b.WriteString("<h3>Late Staff:</h3>\n")
	for _, e := range late {
		fmt.Fprintf(&b, "<p>%s - %s</p>\n", e.Name, e.CheckIn.Format(time.RFC1123))
	}

	b.WriteString("<h3>Checked in After 5 PM:</h3>\n")
	for _, e := range afterFive {
		fmt.Fprintf(&b, "<p>%s - %s</p>\n", e.Name, e.CheckIn.Format(time.RFC1123))
	}
	return b.String()
}

// RunDailyReport merangkum kehadiran hari ini dan mengirimkannya ke
// distribusi HR. Gagal kirim hanya dicatat.
func RunDailyReport(db *gorm.DB, now time.Time, loc *time.Location) {
	log.Println("[REPORT] 📊 Menyusun laporan kehadiran harian...")

	day := officetime.DayStart(now, loc)

	var totalStaff int64
	if err := db.Model(&staffModel.StaffModel{}).Count(&totalStaff).Error; err != nil {
		log.Printf("[REPORT] ❌ Gagal hitung staff: %v", err)
		return
	}

	var records []attendanceModel.AttendanceModel
	if err := db.Preload("Staff").
		Where("attendance_date = ?", day).
		Find(&records).Error; err != nil {
		log.Printf("[REPORT] ❌ Gagal ambil attendance: %v", err)
		return
	}

	present := 0
	var late, afterFive []ReportEntry
	for i := range records {
		r := &records[i]
		name := ""
		if r.Staff != nil {
			name = r.Staff.StaffName
		}

		switch r.AttendanceStatus {
		case constants.AttendanceStatusPresent, constants.AttendanceStatusLate:
			present++
		}
		if r.AttendanceStatus == constants.AttendanceStatusLate && r.AttendanceCheckIn != nil {
			late = append(late, ReportEntry{Name: name, CheckIn: *r.AttendanceCheckIn})
		}
		if r.AttendanceCheckIn != nil && officetime.AfterClose(*r.AttendanceCheckIn, loc) {
			afterFive = append(afterFive, ReportEntry{Name: name, CheckIn: *r.AttendanceCheckIn})
		}
	}
	absent := int(totalStaff) - present

	html := BuildDailyReportHTML(int(totalStaff), present, absent, late, afterFive)
	if err := mailer.SendEmail(constants.HRDistributionList, "📊 Daily Attendance Report", html); err != nil {
		log.Printf("[REPORT] ❌ %v", err)
		return
	}
	log.Println("[REPORT] ✅ Laporan harian terkirim.")
}
