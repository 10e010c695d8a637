package scheduler

import (
	"strings"
	"testing"
	"time"

	"absensiku_backend/internals/constants"
	staffModel "absensiku_backend/internals/features/users/staff/model"
	staffService "absensiku_backend/internals/features/users/staff/service"
)

func lagos(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestNextRunAt(t *testing.T) {
	t.Parallel()
	loc := lagos(t)

	// Sebelum jam trigger → hari ini.
	now := time.Date(2025, 7, 14, 10, 0, 0, 0, loc)
	next := NextRunAt(now, 17, 5, loc)
	want := time.Date(2025, 7, 14, 17, 5, 0, 0, loc)
	if !next.Equal(want) {
		t.Errorf("NextRunAt pagi = %v, want %v", next, want)
	}

	// Sudah lewat → besok.
	now = time.Date(2025, 7, 14, 17, 6, 0, 0, loc)
	next = NextRunAt(now, 17, 5, loc)
	want = time.Date(2025, 7, 15, 17, 5, 0, 0, loc)
	if !next.Equal(want) {
		t.Errorf("NextRunAt sore = %v, want %v", next, want)
	}

	// Tepat di jam trigger → besok (trigger hari ini dianggap sudah jalan).
	now = time.Date(2025, 7, 14, 17, 5, 0, 0, loc)
	next = NextRunAt(now, 17, 5, loc)
	if !next.Equal(want) {
		t.Errorf("NextRunAt tepat trigger = %v, want %v", next, want)
	}
}

func TestBuildDailyReportHTML(t *testing.T) {
	t.Parallel()
	loc := lagos(t)

	late := []ReportEntry{
		{Name: "Bola", CheckIn: time.Date(2025, 7, 14, 10, 12, 0, 0, loc)},
	}
	afterFive := []ReportEntry{
		{Name: "Chidi", CheckIn: time.Date(2025, 7, 14, 17, 40, 0, 0, loc)},
	}

	html := BuildDailyReportHTML(12, 9, 3, late, afterFive)

	for _, want := range []string{
		"Total Staff:</strong> 12",
		"Present:</strong> 9",
		"Absent:</strong> 3",
		"Late:</strong> 1",
		"after 5 PM:</strong> 1",
		"Bola",
		"Chidi",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("laporan tidak memuat %q:\n%s", want, html)
		}
	}
}

func TestExpiredPermissionStaffBackfillableSameDay(t *testing.T) {
	t.Parallel()
	loc := lagos(t)

	// Permission berakhir Selasa 23:59:59. Saat sweep Rabu 17:05 jalan,
	// expiry harus sudah mengembalikan status ke Active SEBELUM backfill
	// mengambil roster — kalau tidak, staff ini lolos satu hari dari
	// pencatatan Absent.
	end := time.Date(2025, 7, 15, 23, 59, 59, 0, loc)
	sweepAt := time.Date(2025, 7, 16, 17, 5, 0, 0, loc)

	s := &staffModel.StaffModel{
		StaffName:   "Bola",
		StaffEmail:  "bola@nbc.com",
		StaffStatus: constants.StaffStatusActive,
	}
	s.SetPermission(staffModel.StaffPermission{
		Type:      constants.PermissionLeave,
		StartDate: end.AddDate(0, 0, -5),
		EndDate:   end,
	})
	if s.StaffStatus != constants.StaffStatusOnLeave {
		t.Fatalf("status setelah grant = %q, want On Leave", s.StaffStatus)
	}

	if !staffService.PermissionExpired(s, sweepAt) {
		t.Fatal("permission berakhir kemarin harus terdeteksi expired saat sweep")
	}

	// Fase expiry sweep memakai ClearPermission; hasilnya harus lolos
	// filter roster backfill (staff_status = Active).
	s.ClearPermission()
	if s.StaffStatus != constants.StaffStatusActive {
		t.Errorf("status setelah expiry = %q, want Active (syarat masuk backfill)", s.StaffStatus)
	}
	if staffService.IsUnderPermission(s, sweepAt) {
		t.Error("staff yang sudah dibersihkan tidak boleh lagi di bawah permission")
	}
}

func TestBuildDailyReportHTMLEmptyLists(t *testing.T) {
	t.Parallel()

	html := BuildDailyReportHTML(5, 5, 0, nil, nil)
	if !strings.Contains(html, "Late:</strong> 0") {
		t.Errorf("want Late 0:\n%s", html)
	}
	if !strings.Contains(html, "Late Staff:") {
		t.Errorf("heading Late Staff tetap ada walau kosong:\n%s", html)
	}
}
