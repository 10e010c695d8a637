package service

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

func TestIsOfficeDay(t *testing.T) {
	t.Parallel()
	loc := lagos(t)

	days := []string{"Monday", "Wednesday", "Friday"}
	monday := time.Date(2025, 7, 14, 9, 0, 0, 0, loc)
	tuesday := monday.AddDate(0, 0, 1)

	if !IsOfficeDay(days, monday, loc) {
		t.Error("Senin harus hari kantor")
	}
	if IsOfficeDay(days, tuesday, loc) {
		t.Error("Selasa bukan hari kantor")
	}

	// Perbandingan nama hari tidak sensitif huruf besar/spasi.
	if !IsOfficeDay([]string{" monday "}, monday, loc) {
		t.Error("nama hari lowercase harus tetap cocok")
	}
}

func TestIsOfficeDayUsesOfficeZone(t *testing.T) {
	t.Parallel()
	loc := lagos(t)

	// Senin 23:30 UTC = Selasa 00:30 di Lagos; yang dipakai nama hari lokal.
	lateMondayUTC := time.Date(2025, 7, 14, 23, 30, 0, 0, time.UTC)
	if IsOfficeDay([]string{"Monday"}, lateMondayUTC, loc) {
		t.Error("23:30 UTC Senin sudah Selasa di Lagos")
	}
	if !IsOfficeDay([]string{"Tuesday"}, lateMondayUTC, loc) {
		t.Error("want cocok dengan Tuesday")
	}
}

func TestContainsDate(t *testing.T) {
	t.Parallel()
	loc := lagos(t)

	assigned := []string{"2025-07-14", "2025-07-16", "2025-07-18"}

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"tanggal terjadwal, siang", time.Date(2025, 7, 16, 13, 45, 0, 0, loc), true},
		{"tanggal terjadwal, tepat tengah malam", time.Date(2025, 7, 14, 0, 0, 0, 0, loc), true},
		{"tanggal tidak terjadwal", time.Date(2025, 7, 15, 9, 0, 0, 0, loc), false},
		{"23:30 UTC masuk hari berikutnya di Lagos", time.Date(2025, 7, 15, 23, 30, 0, 0, time.UTC), true},
	}
	for _, tc := range cases {
		if got := ContainsDate(assigned, tc.at, loc); got != tc.want {
			t.Errorf("%s: ContainsDate = %v, want %v", tc.name, got, tc.want)
		}
	}

	if ContainsDate(nil, time.Now(), loc) {
		t.Error("assigned kosong: want false")
	}
}
