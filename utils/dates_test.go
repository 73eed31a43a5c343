package utils

import (
	"testing"
	"time"
)

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-03-08", 0}, // Sunday
		{"2026-03-09", 1}, // Monday
		{"2026-03-14", 6}, // Saturday
	}
	for _, tt := range tests {
		got, err := DayOfWeek(tt.date)
		if err != nil {
			t.Errorf("DayOfWeek(%q): unexpected error: %v", tt.date, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DayOfWeek(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}

	if _, err := DayOfWeek("not-a-date"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 3, 9, 23, 50, 0, 0, time.UTC)
	end := time.Date(2026, 3, 12, 0, 10, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 3 {
		t.Errorf("DaysBetween = %d, want 3", got)
	}
}
