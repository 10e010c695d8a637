package service

import (
	"testing"
)

func TestDistanceKmZeroAtSamePoint(t *testing.T) {
	t.Parallel()

	d := DistanceKm(6.5244, 3.3792, 6.5244, 3.3792)
	if d != 0 {
		t.Errorf("DistanceKm sama titik = %v, want 0", d)
	}
}

func TestDistanceKmKnownPair(t *testing.T) {
	t.Parallel()

	// Head Office ↔ Ikeja: ±11 km garis lurus.
	d := DistanceKm(6.5244, 3.3792, 6.62191, 3.35309)
	if d < 10 || d > 12 {
		t.Errorf("DistanceKm Head Office-Ikeja = %v km, want sekitar 11", d)
	}
}

func TestMatchOfficeInsideRadius(t *testing.T) {
	t.Parallel()

	for _, o := range AllowedOffices {
		got, ok := MatchOffice(o.Latitude, o.Longitude)
		if !ok {
			t.Errorf("MatchOffice tepat di %s: want match", o.Name)
			continue
		}
		if got.Name != o.Name {
			t.Errorf("MatchOffice di %s = %s", o.Name, got.Name)
		}
	}

	// ±20 m ke utara dari Head Office, masih dalam radius 50 m.
	nudge := 20.0 / 111320.0 // derajat lintang per meter
	if _, ok := MatchOffice(6.5244+nudge, 3.3792); !ok {
		t.Error("MatchOffice 20 m dari Head Office: want match")
	}
}

func TestMatchOfficeOutsideRadius(t *testing.T) {
	t.Parallel()

	// ±200 m dari Head Office sudah di luar radius 50 m.
	nudge := 200.0 / 111320.0
	if o, ok := MatchOffice(6.5244+nudge, 3.3792); ok {
		t.Errorf("MatchOffice 200 m dari kantor: want no match, got %s", o.Name)
	}

	// Jauh sekali.
	if o, ok := MatchOffice(52.5200, 13.4050); ok {
		t.Errorf("MatchOffice Berlin: want no match, got %s", o.Name)
	}
}

func TestMatchOfficeBoundary(t *testing.T) {
	t.Parallel()

	// Radius adalah inklusif (<= 0.05 km). Titik tepat 50 m masih match;
	// toleransi float haversine membuat kita uji sedikit di dalam & luar.
	just := 49.0 / 111320.0
	if _, ok := MatchOffice(6.5244+just, 3.3792); !ok {
		t.Error("49 m: want match")
	}
	over := 51.0 / 111320.0
	if _, ok := MatchOffice(6.5244+over, 3.3792); ok {
		t.Error("51 m: want no match")
	}
}
