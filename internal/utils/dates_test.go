package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	tests := []struct {
		name     string
		from, to time.Time
		want     int
	}{
		{"same day", time.Date(2025, 3, 10, 0, 5, 0, 0, time.UTC), time.Date(2025, 3, 10, 23, 55, 0, 0, time.UTC), 0},
		{"across midnight", time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC), time.Date(2025, 3, 10, 0, 1, 0, 0, time.UTC), 1},
		{"three days", time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC), time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC), 3},
		// IST 凌晨 2 点在 UTC 仍是前一天
		{"other zone", time.Date(2025, 3, 10, 2, 0, 0, 0, ist), time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), 1},
	}
	for _, tt := range tests {
		if got := DaysBetween(tt.from, tt.to); got != tt.want {
			t.Errorf("%s: DaysBetween = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDayKey(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	if got := DayKey(time.Date(2025, 3, 10, 2, 0, 0, 0, ist)); got != "2025-03-09" {
		t.Errorf("DayKey = %s, want 2025-03-09", got)
	}
}

func TestISOTime(t *testing.T) {
	ts := time.Date(2025, 3, 10, 10, 4, 5, 123456789, time.UTC)
	if got := ISOTime(ts); got != "2025-03-10T10:04:05.123Z" {
		t.Errorf("ISOTime = %s", got)
	}

	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	prev := Now
	Now = func() time.Time { return fixed }
	defer func() { Now = prev }()
	if got := ISOTime(time.Time{}); got != "2024-01-02T03:04:05.000Z" {
		t.Errorf("ISOTime(zero) = %s, want now", got)
	}
}
