package cli

import "testing"

func TestFormatCurrency(t *testing.T) {
	tests := map[float64]string{
		0:         "$0",
		500:       "$500",
		535000:    "$535,000",
		1234567.4: "$1,234,567",
		-2500:     "-$2,500",
	}
	for in, want := range tests {
		if got := FormatCurrency(in); got != want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	tests := map[float64]string{
		6:    "6",
		1.5:  "1.5",
		1200: "1,200",
	}
	for in, want := range tests {
		if got := FormatCount(in); got != want {
			t.Errorf("FormatCount(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDaysAndNumber(t *testing.T) {
	if got := FormatDays(40.125); got != "40.1" {
		t.Errorf("FormatDays(40.125) = %q, want 40.1", got)
	}
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Errorf("FormatNumber(1234567) = %q, want 1,234,567", got)
	}
}

func TestFormatDeltaAndGrowth(t *testing.T) {
	if got := FormatDelta(110, 100); got != "+$10" {
		t.Errorf("FormatDelta(110, 100) = %q, want +$10", got)
	}
	if got := FormatDelta(90, 100); got != "-$10" {
		t.Errorf("FormatDelta(90, 100) = %q, want -$10", got)
	}
	if got := FormatGrowth(110, 100); got != "+10.0%" {
		t.Errorf("FormatGrowth(110, 100) = %q, want +10.0%%", got)
	}
	if got := FormatGrowth(5, 0); got != "n/a" {
		t.Errorf("FormatGrowth(5, 0) = %q, want n/a", got)
	}
}
