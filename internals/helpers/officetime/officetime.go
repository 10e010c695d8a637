// file: internals/helpers/officetime/officetime.go
package officetime

import (
	"time"

	"absensiku_backend/internals/constants"
)

// DayStart menormalkan waktu ke tengah malam lokal kantor.
func DayStart(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// MonthStart mengembalikan tanggal 1 bulan berjalan, tengah malam lokal.
func MonthStart(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), 1, 0, 0, 0, 0, loc)
}

// MonthToken menghasilkan marker "YYYY-MM" untuk gating email bulanan.
func MonthToken(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(constants.MonthTokenLayout)
}

// WeekStart mengembalikan hari Minggu awal pekan berjalan (mengikuti
// perhitungan summary di portal lama: minggu dimulai hari Minggu).
func WeekStart(t time.Time, loc *time.Location) time.Time {
	day := DayStart(t, loc)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// YearStart mengembalikan 1 Januari tahun berjalan, tengah malam lokal.
func YearStart(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), 1, 1, 0, 0, 0, 0, loc)
}

// DateKey memformat tanggal lokal sebagai "YYYY-MM-DD" (kunci kolom
// attendance_date dan isi assigned_dates pada schedule).
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// WeekdayName menghasilkan nama hari ("Monday", ...) pada zona kantor,
// dipakai untuk mencocokkan weekly office schedule.
func WeekdayName(t time.Time, loc *time.Location) string {
	return t.In(loc).Weekday().String()
}

// AfterClose melaporkan apakah waktu lokal sudah >= jam tutup kantor (17:00).
func AfterClose(t time.Time, loc *time.Location) bool {
	return t.In(loc).Hour() >= constants.OfficeCloseHour
}
