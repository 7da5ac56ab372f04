package model

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := DefaultAssumptions().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Assumptions)
		want   error
	}{
		{"zero tenure", func(a *Assumptions) { a.TenureMonths = 0 }, ErrInvalidTenure},
		{"negative tenure", func(a *Assumptions) { a.TenureMonths = -3 }, ErrInvalidTenure},
		{"negative initial", func(a *Assumptions) { a.InitialCEOs = -1 }, ErrNegativeInput},
		{"negative rate", func(a *Assumptions) { a.NewCEOsPerMonth = -0.5 }, ErrNegativeInput},
		{"negative price", func(a *Assumptions) { a.OnDemandPrice = -500 }, ErrNegativeInput},
		{"negative sprint price", func(a *Assumptions) { a.SprintPrice = -1 }, ErrNegativeInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := DefaultAssumptions()
			tt.mutate(&a)
			if err := a.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidate_ZeroRateAllowed(t *testing.T) {
	a := DefaultAssumptions()
	a.NewCEOsPerMonth = 0
	a.InitialCEOs = 0
	if err := a.Validate(); err != nil {
		t.Fatalf("zero counts rejected: %v", err)
	}
}

func TestCEOHoursPerMonth(t *testing.T) {
	if got := DefaultAssumptions().CEOHoursPerMonth(); got != 3 {
		t.Fatalf("CEOHoursPerMonth() = %v, want 3", got)
	}
}

func TestCalendarHelpers(t *testing.T) {
	tests := []struct {
		i     int
		year  int
		month string
	}{
		{0, 2026, "Jan"},
		{11, 2026, "Dec"},
		{12, 2027, "Jan"},
		{35, 2028, "Dec"},
	}
	for _, tt := range tests {
		if got := YearOf(tt.i); got != tt.year {
			t.Errorf("YearOf(%d) = %d, want %d", tt.i, got, tt.year)
		}
		if got := MonthNameOf(tt.i); got != tt.month {
			t.Errorf("MonthNameOf(%d) = %q, want %q", tt.i, got, tt.month)
		}
	}

	if !IsQuarterEnd(2) || !IsQuarterEnd(35) || IsQuarterEnd(3) {
		t.Error("IsQuarterEnd wrong for Mar/Dec/Apr")
	}
	if !IsQuarterStart(0) || !IsQuarterStart(9) || IsQuarterStart(1) {
		t.Error("IsQuarterStart wrong for Jan/Oct/Feb")
	}
	if got := Years(); len(got) != 3 || got[0] != 2026 || got[2] != 2028 {
		t.Errorf("Years() = %v, want [2026 2027 2028]", got)
	}
}
