package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"absensiku_backend/internals/constants"
)

func lagos(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func at(loc *time.Location, hour, min, sec int) time.Time {
	return time.Date(2025, 7, 14, hour, min, sec, 0, loc)
}

func TestClassifyTimeBoundaries(t *testing.T) {
	t.Parallel()
	loc := lagos(t)

	cases := []struct {
		name string
		time time.Time
		want string
	}{
		{"jam 07:30 pagi", at(loc, 7, 30, 0), constants.AttendanceStatusPresent},
		{"tepat 09:00:00 masih Present", at(loc, 9, 0, 0), constants.AttendanceStatusPresent},
		{"09:00:01 sudah Late", at(loc, 9, 0, 1), constants.AttendanceStatusLate},
		{"09:01:00 Late", at(loc, 9, 1, 0), constants.AttendanceStatusLate},
		{"12:00 Late", at(loc, 12, 0, 0), constants.AttendanceStatusLate},
		{"16:59:59 masih Late", at(loc, 16, 59, 59), constants.AttendanceStatusLate},
		{"tepat 17:00:00 Absent", at(loc, 17, 0, 0), constants.AttendanceStatusAbsent},
		{"20:00 Absent", at(loc, 20, 0, 0), constants.AttendanceStatusAbsent},
	}
	for _, tc := range cases {
		got := Classify(tc.time, loc, true, false)
		if got != tc.want {
			t.Errorf("%s: Classify = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestClassifyPermissionWinsAlways(t *testing.T) {
	t.Parallel()
	loc := lagos(t)

	times := []time.Time{
		at(loc, 8, 0, 0),
		at(loc, 12, 0, 0),
		at(loc, 17, 0, 0),
		at(loc, 23, 0, 0),
	}
	for _, ts := range times {
		for _, matched := range []bool{true, false} {
			got := Classify(ts, loc, matched, true)
			if got != constants.AttendanceStatusPermission {
				t.Errorf("permission %v matched=%v: Classify = %q, want Permission", ts, matched, got)
			}
		}
	}
}

func TestClassifyOutOfOfficeOverridesTime(t *testing.T) {
	t.Parallel()
	loc := lagos(t)

	// Di luar kantor = Absent, jam berapa pun.
	for _, ts := range []time.Time{at(loc, 8, 0, 0), at(loc, 10, 0, 0), at(loc, 18, 0, 0)} {
		got := Classify(ts, loc, false, false)
		if got != constants.AttendanceStatusAbsent {
			t.Errorf("di luar kantor %v: Classify = %q, want Absent", ts, got)
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	// Device yang kalah balapan bind dapat SQLSTATE 23505 dari unique
	// index staff_device_id dan harus dikenali sebagai reuse.
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_staffs_staff_device_id"}
	if !isUniqueViolation(dup) {
		t.Error("23505: want unique violation terdeteksi")
	}
	if !isUniqueViolation(fmt.Errorf("update gagal: %w", dup)) {
		t.Error("23505 terbungkus: want tetap terdeteksi")
	}

	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("FK violation bukan unique violation")
	}
	if isUniqueViolation(errors.New("connection refused")) {
		t.Error("error biasa bukan unique violation")
	}
	if isUniqueViolation(nil) {
		t.Error("nil bukan unique violation")
	}
}

func TestCountsTowardMonthlyAbsence(t *testing.T) {
	t.Parallel()

	if !countsTowardMonthlyAbsence(constants.AttendanceStatusAbsent) {
		t.Error("Absent harus menaikkan counter bulanan")
	}
	for _, status := range []string{
		constants.AttendanceStatusPresent,
		constants.AttendanceStatusLate,
		constants.AttendanceStatusPermission,
	} {
		if countsTowardMonthlyAbsence(status) {
			t.Errorf("%s tidak boleh menaikkan counter bulanan", status)
		}
	}
}

func TestClassifyConvertsToOfficeZone(t *testing.T) {
	t.Parallel()
	loc := lagos(t)

	// 08:30 UTC = 09:30 Lagos → Late walau jam UTC masih < 09:00.
	utc := time.Date(2025, 7, 14, 8, 30, 0, 0, time.UTC)
	if got := Classify(utc, loc, true, false); got != constants.AttendanceStatusLate {
		t.Errorf("08:30 UTC: Classify = %q, want Late", got)
	}

	// 16:30 UTC = 17:30 Lagos → Absent.
	utcLate := time.Date(2025, 7, 14, 16, 30, 0, 0, time.UTC)
	if got := Classify(utcLate, loc, true, false); got != constants.AttendanceStatusAbsent {
		t.Errorf("16:30 UTC: Classify = %q, want Absent", got)
	}
}
