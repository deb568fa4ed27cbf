package roster

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeAge(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		asOf  time.Time
		want  int
	}{
		{"OnBirthday", date(2000, 1, 1), date(2024, 1, 1), 24},
		{"DayBeforeBirthday", date(2000, 1, 1), date(2023, 12, 31), 23},
		{"MidYearAfterBirthday", date(2000, 3, 15), date(2024, 6, 1), 24},
		{"MidYearBeforeBirthday", date(2000, 9, 15), date(2024, 6, 1), 23},
		{"SameDay", date(2024, 6, 1), date(2024, 6, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeAge(tt.birth, tt.asOf)
			if err != nil {
				t.Fatalf("ComputeAge returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected age %d, got %d", tt.want, got)
			}
		})
	}
}

func TestComputeAge_InvalidDates(t *testing.T) {
	if _, err := ComputeAge(date(2030, 1, 1), date(2024, 1, 1)); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate for future birth date, got %v", err)
	}
	if _, err := ComputeAge(time.Time{}, date(2024, 1, 1)); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate for zero birth date, got %v", err)
	}
}

func TestIsMinor_Boundary(t *testing.T) {
	if !IsMinor(17) {
		t.Error("age 17 should be a minor")
	}
	if IsMinor(18) {
		t.Error("age 18 should not be a minor")
	}
}
