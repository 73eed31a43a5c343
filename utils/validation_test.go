package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{"+5491122334455", "+34 600 123 456", "600123456"}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Errorf("expected %q to be valid", p)
		}
	}

	invalid := []string{"", "abc", "+0123", "++123456"}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Errorf("expected %q to be invalid", p)
		}
	}
}

func TestValidateClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, c := range valid {
		if !ValidateClock(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}

	invalid := []string{"9:30", "24:00", "12:60", "12-30", ""}
	for _, c := range invalid {
		if ValidateClock(c) {
			t.Errorf("expected %q to be invalid", c)
		}
	}
}

func TestValidateDate(t *testing.T) {
	valid := []string{"2026-01-05", "2026-12-31"}
	for _, d := range valid {
		if !ValidateDate(d) {
			t.Errorf("expected %q to be valid", d)
		}
	}

	invalid := []string{"2026-13-01", "2026-00-10", "2026-01-32", "05-01-2026", ""}
	for _, d := range invalid {
		if ValidateDate(d) {
			t.Errorf("expected %q to be invalid", d)
		}
	}
}
