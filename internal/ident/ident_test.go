package ident

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestRandomProjectNameFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^Automa_Test_\d{6}_[0-9A-Z]{6}$`)

	name := RandomProjectName("Automa_Test")
	if !pattern.MatchString(name) {
		t.Errorf("RandomProjectName() = %q, want match for %s", name, pattern)
	}
}

func TestRandomProjectNameUniqueness(t *testing.T) {
	const n = 500

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		seen[RandomProjectName("Automa_Test")] = struct{}{}
	}

	if len(seen) != n {
		t.Errorf("generated %d names but only %d were distinct", n, len(seen))
	}
}

func TestRandomEmailFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^sumit_\d{6}_[0-9A-Z]{6}@gmail\.com$`)

	email := RandomEmail("sumit")
	if !pattern.MatchString(email) {
		t.Errorf("RandomEmail() = %q, want match for %s", email, pattern)
	}
}

func TestWithRandomSuffix(t *testing.T) {
	base := "Created via Playwright automation"

	got := WithRandomSuffix(base)
	if !strings.HasPrefix(got, base+"_") {
		t.Fatalf("WithRandomSuffix() = %q, want prefix %q", got, base+"_")
	}
	if suffix := strings.TrimPrefix(got, base+"_"); len(suffix) != 4 {
		t.Errorf("suffix %q has length %d, want 4", suffix, len(suffix))
	}
}

func TestFormDates(t *testing.T) {
	now := time.Date(2023, time.October, 15, 12, 0, 0, 0, time.UTC)

	if got := FormStartDate(now); got != "15-10-2023" {
		t.Errorf("FormStartDate() = %q, want %q", got, "15-10-2023")
	}
	if got := FormEndDate(now); got != "14-11-2023" {
		t.Errorf("FormEndDate() = %q, want %q", got, "14-11-2023")
	}
}

func TestCalendarLabel(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "single digit day has no leading zero",
			date: time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC),
			want: "2 October 2023",
		},
		{
			name: "double digit day",
			date: time.Date(2023, time.October, 15, 0, 0, 0, 0, time.UTC),
			want: "15 October 2023",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalendarLabel(tt.date); got != tt.want {
				t.Errorf("CalendarLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
