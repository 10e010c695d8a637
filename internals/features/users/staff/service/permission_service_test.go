package service

import (
	"encoding/json"
	"testing"
	"time"

	"absensiku_backend/internals/constants"
	"absensiku_backend/internals/features/users/staff/model"
)

func staffWithPermission(permType string, start, end time.Time) *model.StaffModel {
	s := &model.StaffModel{
		StaffName:   "Ayo",
		StaffEmail:  "ayo@nbc.com",
		StaffStatus: constants.StaffStatusActive,
	}
	s.SetPermission(model.StaffPermission{
		Type:      permType,
		Reason:    "annual leave",
		StartDate: start,
		EndDate:   end,
	})
	return s
}

func TestIsUnderPermissionWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 12, 23, 59, 59, 0, time.UTC)

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"di tengah window", now, true},
		{"tepat di startDate", start, true},
		{"tepat di endDate", end, true},
		{"sebelum mulai", start.Add(-time.Second), false},
		{"sesudah berakhir", end.Add(time.Second), false},
	}

	s := staffWithPermission(constants.PermissionLeave, start, end)
	for _, tc := range cases {
		if got := IsUnderPermission(s, tc.at); got != tc.want {
			t.Errorf("%s: IsUnderPermission = %v, want %v", tc.name, got, tc.want)
		}
	}

	if IsUnderPermission(&model.StaffModel{}, now) {
		t.Error("staff tanpa permission: want false")
	}
}

func TestSetPermissionMapsStatus(t *testing.T) {
	t.Parallel()

	start := time.Now()
	end := start.Add(48 * time.Hour)

	cases := []struct {
		permType   string
		wantStatus string
	}{
		{constants.PermissionLeave, constants.StaffStatusOnLeave},
		{constants.PermissionOfficial, constants.StaffStatusOnOfficialDuty},
		{constants.PermissionSickness, constants.StaffStatusSick},
		{constants.PermissionSuspension, constants.StaffStatusSuspended},
		{constants.PermissionEmergency, constants.StaffStatusActive},
	}
	for _, tc := range cases {
		s := staffWithPermission(tc.permType, start, end)
		if s.StaffStatus != tc.wantStatus {
			t.Errorf("%s: status = %q, want %q", tc.permType, s.StaffStatus, tc.wantStatus)
		}
	}
}

func TestClearPermissionMovesToHistory(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	s := staffWithPermission(constants.PermissionSickness, start, end)

	s.ClearPermission()

	if s.CurrentPermission() != nil {
		t.Error("permission masih ada setelah ClearPermission")
	}
	if s.StaffStatus != constants.StaffStatusActive {
		t.Errorf("status = %q, want Active", s.StaffStatus)
	}

	var history []model.StaffPermission
	if err := json.Unmarshal(s.StaffPermissionsHistory, &history); err != nil {
		t.Fatalf("unmarshal history: %v", err)
	}
	if len(history) != 1 || history[0].Type != constants.PermissionSickness {
		t.Errorf("history = %+v, want satu entri Sickness", history)
	}

	// Clear kedua kali harus no-op.
	s.ClearPermission()
	_ = json.Unmarshal(s.StaffPermissionsHistory, &history)
	if len(history) != 1 {
		t.Errorf("history setelah clear kedua = %d entri, want tetap 1", len(history))
	}
}

func TestPermissionExpired(t *testing.T) {
	t.Parallel()

	end := time.Date(2025, 7, 5, 17, 0, 0, 0, time.UTC)
	s := staffWithPermission(constants.PermissionLeave, end.AddDate(0, 0, -3), end)

	if PermissionExpired(s, end) {
		t.Error("tepat di endDate belum expired")
	}
	if !PermissionExpired(s, end.Add(time.Minute)) {
		t.Error("lewat endDate: want expired")
	}
	if PermissionExpired(&model.StaffModel{}, end) {
		t.Error("tanpa permission: want false")
	}
}
