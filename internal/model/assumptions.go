// Package model defines domain types for the ScaleOS financial projection.
package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTenure is returned when tenure is not a positive number of months.
	ErrInvalidTenure = errors.New("tenure must be greater than zero")
	// ErrNegativeInput is returned when a count or price lever is negative.
	ErrNegativeInput = errors.New("input must not be negative")
)

// Assumptions holds every lever that drives the projection.
//
// The first four fields are the input cells written to the workbook (F2:F5) and
// stay editable after generation. The remaining levers are baked into the
// monthly formulas as constants.
type Assumptions struct {
	TenureMonths    float64 `toml:"tenure_months"`
	InitialCEOs     float64 `toml:"initial_ceos"`
	NewCEOsPerMonth float64 `toml:"new_ceos_per_month"`
	OnDemandPrice   float64 `toml:"on_demand_price"`

	CEOPricePerMonth     float64 `toml:"ceo_price_per_month"`
	WorkshopBasePerMonth float64 `toml:"workshop_base_per_month"`
	WorkshopQuarterBonus float64 `toml:"workshop_quarter_bonus"`
	WorkshopPrice        float64 `toml:"workshop_price"`
	SprintsPerQuarter    float64 `toml:"sprints_per_quarter"`
	SprintPrice          float64 `toml:"sprint_price"`
	OnDemandCourses      float64 `toml:"on_demand_courses_per_month"`

	SessionsPerCEOMonth float64 `toml:"sessions_per_ceo_month"`
	HoursPerSession     float64 `toml:"hours_per_session"`
	HoursPerWorkshop    float64 `toml:"hours_per_workshop"`
	HoursPerSprint      float64 `toml:"hours_per_sprint"`
	HoursPerDay         float64 `toml:"hours_per_day"`
}

// DefaultAssumptions returns the base model: 6-month tenure, 2 CEOs in the
// first month, 1 new CEO per month after that, and $500 on-demand courses.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		TenureMonths:    6,
		InitialCEOs:     2,
		NewCEOsPerMonth: 1,
		OnDemandPrice:   500,

		CEOPricePerMonth:     5000,
		WorkshopBasePerMonth: 1,
		WorkshopQuarterBonus: 1,
		WorkshopPrice:        7500,
		SprintsPerQuarter:    1,
		SprintPrice:          25000,
		OnDemandCourses:      0,

		SessionsPerCEOMonth: 2,
		HoursPerSession:     1.5,
		HoursPerWorkshop:    4,
		HoursPerSprint:      17,
		HoursPerDay:         8,
	}
}

// CEOHoursPerMonth is the coaching time one active CEO consumes per month.
func (a Assumptions) CEOHoursPerMonth() float64 {
	return a.SessionsPerCEOMonth * a.HoursPerSession
}

// Validate checks the generation-time inputs. Values typed into the workbook
// afterwards are not covered.
func (a Assumptions) Validate() error {
	if a.TenureMonths <= 0 {
		return fmt.Errorf("tenure %.2f: %w", a.TenureMonths, ErrInvalidTenure)
	}
	if a.HoursPerDay <= 0 {
		return fmt.Errorf("hours per day %.2f: must be greater than zero", a.HoursPerDay)
	}

	levers := []struct {
		name  string
		value float64
	}{
		{"initial CEOs", a.InitialCEOs},
		{"new CEOs per month", a.NewCEOsPerMonth},
		{"on-demand price", a.OnDemandPrice},
		{"CEO price", a.CEOPricePerMonth},
		{"workshops per month", a.WorkshopBasePerMonth},
		{"workshop quarter bonus", a.WorkshopQuarterBonus},
		{"workshop price", a.WorkshopPrice},
		{"sprints per quarter", a.SprintsPerQuarter},
		{"sprint price", a.SprintPrice},
		{"on-demand courses", a.OnDemandCourses},
		{"sessions per CEO", a.SessionsPerCEOMonth},
		{"hours per session", a.HoursPerSession},
		{"hours per workshop", a.HoursPerWorkshop},
		{"hours per sprint", a.HoursPerSprint},
	}
	for _, l := range levers {
		if l.value < 0 {
			return fmt.Errorf("%s %.2f: %w", l.name, l.value, ErrNegativeInput)
		}
	}
	return nil
}
