package weeklypay_test

import (
	"testing"

	"github.com/shootingstar112/startup-hr-sub000/weeklypay"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		wage     string
		hours    string
		eligible bool
		want     int64
	}{
		{"full time", "10,030", "40", true, 80_240},
		{"part time 20h", "10,030", "20", true, 40_120},
		{"overtime capped at 40h", "10,030", "52", true, 80_240},
		{"under 15h not eligible", "10,030", "14", false, 0},
		{"exactly 15h", "10,000", "15", true, 30_000},
		{"zero wage still eligible", "", "40", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := weeklypay.Compute(weeklypay.Normalize(tt.wage, tt.hours))
			if res.Eligible != tt.eligible {
				t.Fatalf("eligible = %v, want %v", res.Eligible, tt.eligible)
			}
			if got := res.WeeklyPay.Int64(); got != tt.want {
				t.Errorf("weekly pay = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalize_ClampsAbsurdHours(t *testing.T) {
	in := weeklypay.Normalize("10,000", "500")
	if in.WeeklyHours != 168 {
		t.Errorf("weekly hours = %d, want 168", in.WeeklyHours)
	}
}
