package officetime

import (
	"testing"
	"time"
)

func lagos(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestDayStartNormalizesAcrossZones(t *testing.T) {
	t.Parallel()
	loc := lagos(t)

	// 23:30 UTC = 00:30 hari berikutnya di Lagos (UTC+1).
	utc := time.Date(2025, 7, 14, 23, 30, 0, 0, time.UTC)
	got := DayStart(utc, loc)
	want := time.Date(2025, 7, 15, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("DayStart = %v, want %v", got, want)
	}
}

func TestMonthToken(t *testing.T) {
	t.Parallel()
	loc := lagos(t)

	at := time.Date(2025, 7, 4, 10, 0, 0, 0, loc)
	if tok := MonthToken(at, loc); tok != "2025-07" {
		t.Errorf("MonthToken = %q, want 2025-07", tok)
	}

	// 31 Jul 23:30 UTC sudah masuk 1 Agustus waktu Lagos.
	edge := time.Date(2025, 7, 31, 23, 30, 0, 0, time.UTC)
	if tok := MonthToken(edge, loc); tok != "2025-08" {
		t.Errorf("MonthToken at month edge = %q, want 2025-08", tok)
	}
}

func TestWeekStartIsSunday(t *testing.T) {
	t.Parallel()
	loc := lagos(t)

	// Rabu 16 Jul 2025 → minggu dimulai Minggu 13 Jul.
	wed := time.Date(2025, 7, 16, 12, 0, 0, 0, loc)
	got := WeekStart(wed, loc)
	want := time.Date(2025, 7, 13, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("WeekStart = %v, want %v", got, want)
	}
	if got.Weekday() != time.Sunday {
		t.Errorf("WeekStart weekday = %v, want Sunday", got.Weekday())
	}
}

func TestAfterClose(t *testing.T) {
	t.Parallel()
	loc := lagos(t)

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"16:59 belum tutup", time.Date(2025, 7, 14, 16, 59, 59, 0, loc), false},
		{"17:00 tepat tutup", time.Date(2025, 7, 14, 17, 0, 0, 0, loc), true},
		{"pagi", time.Date(2025, 7, 14, 8, 0, 0, 0, loc), false},
	}
	for _, tc := range cases {
		if got := AfterClose(tc.at, loc); got != tc.want {
			t.Errorf("%s: AfterClose = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestWeekdayName(t *testing.T) {
	t.Parallel()
	loc := lagos(t)

	// Sabtu 23:30 UTC = Minggu 00:30 Lagos.
	sat := time.Date(2025, 7, 12, 23, 30, 0, 0, time.UTC)
	if name := WeekdayName(sat, loc); name != "Sunday" {
		t.Errorf("WeekdayName = %q, want Sunday", name)
	}
}
