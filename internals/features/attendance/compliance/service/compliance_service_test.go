package service

import (
	"strings"
	"testing"
)

func strptr(s string) *string { return &s }

func TestPlanEscalationThresholds(t *testing.T) {
	t.Parallel()

	const month = "2025-07"

	cases := []struct {
		name        string
		absences    int
		wantWarning bool
		wantQuery   bool
	}{
		{"0 absen", 0, false, false},
		{"3 absen belum warning", 3, false, false},
		{"4 absen kirim warning", 4, true, false},
		{"5 absen tetap hanya warning", 5, true, false},
		{"6 absen warning + query", 6, true, true},
		{"9 absen warning + query", 9, true, true},
	}
	for _, tc := range cases {
		plan := PlanEscalation(tc.absences, nil, nil, month)
		if plan.SendWarning != tc.wantWarning || plan.SendQuery != tc.wantQuery {
			t.Errorf("%s: plan = %+v, want warning=%v query=%v",
				tc.name, plan, tc.wantWarning, tc.wantQuery)
		}
	}
}

func TestPlanEscalationMonthlyGate(t *testing.T) {
	t.Parallel()

	const month = "2025-07"

	// Warning sudah terkirim bulan ini → tidak dikirim lagi walau absen naik.
	plan := PlanEscalation(5, strptr(month), nil, month)
	if plan.SendWarning {
		t.Error("warning sudah distamp bulan ini: want tidak kirim ulang")
	}

	// Marker bulan lalu tidak menahan bulan baru.
	plan = PlanEscalation(4, strptr("2025-06"), nil, month)
	if !plan.SendWarning {
		t.Error("marker bulan lalu: want warning terkirim bulan ini")
	}

	// Gate warning dan query independen: warning terstamp, query belum.
	plan = PlanEscalation(6, strptr(month), nil, month)
	if plan.SendWarning {
		t.Error("warning terstamp: want tidak kirim warning")
	}
	if !plan.SendQuery {
		t.Error("query belum terstamp: want kirim query")
	}

	// Dua-duanya terstamp → run ulang jadi no-op total.
	plan = PlanEscalation(8, strptr(month), strptr(month), month)
	if plan.SendWarning || plan.SendQuery {
		t.Errorf("kedua marker terstamp: plan = %+v, want kosong", plan)
	}
}

func TestPlanEscalationRerunIdempotent(t *testing.T) {
	t.Parallel()

	const month = "2025-07"

	// Simulasi siklus: absen ke-4 → kirim warning, stamp. Absen ke-5 →
	// re-run tidak mengirim apa pun. Absen ke-6 → hanya query terkirim.
	warning := PlanEscalation(4, nil, nil, month)
	if !warning.SendWarning || warning.SendQuery {
		t.Fatalf("absen ke-4: plan = %+v", warning)
	}
	stampedWarning := strptr(month)

	rerun := PlanEscalation(5, stampedWarning, nil, month)
	if rerun.SendWarning || rerun.SendQuery {
		t.Errorf("absen ke-5 setelah stamp: plan = %+v, want kosong", rerun)
	}

	sixth := PlanEscalation(6, stampedWarning, nil, month)
	if sixth.SendWarning {
		t.Error("absen ke-6: warning tidak boleh dikirim ulang")
	}
	if !sixth.SendQuery {
		t.Error("absen ke-6: want query terkirim")
	}
}

func TestEmailTemplatesMentionName(t *testing.T) {
	t.Parallel()

	if html := warningEmailHTML("Ayo"); !strings.Contains(html, "Ayo") || !strings.Contains(html, "4 times") {
		t.Errorf("warning template tidak lengkap: %s", html)
	}
	if html := queryEmailHTML("Ayo"); !strings.Contains(html, "Ayo") || !strings.Contains(html, "official query") {
		t.Errorf("query template tidak lengkap: %s", html)
	}
}
