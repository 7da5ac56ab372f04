// Package pipeline computes the monthly projection and its yearly rollups.
package pipeline

import (
	"fmt"
	"math"

	"github.com/theirongolddev/scaleos/internal/model"
)

// Build validates the assumptions and computes the full projection.
func Build(a model.Assumptions) (model.Projection, error) {
	if err := a.Validate(); err != nil {
		return model.Projection{}, fmt.Errorf("invalid assumptions: %w", err)
	}

	months := Project(a)
	return model.Projection{
		Assumptions: a,
		Months:      months,
		Years:       AggregateYears(months),
		Totals:      Totals(months),
	}, nil
}

// Project computes the 36 monthly records in index order.
//
// Active CEOs for month i is the sum of new CEOs over months j with
// j >= i - tenure + 1, which is the same row filter the workbook formula
// applies. The window start only moves forward, so the sum is kept with one
// add and amortised O(1) removals per month.
func Project(a model.Assumptions) []model.MonthRecord {
	months := make([]model.MonthRecord, model.HorizonMonths)
	newCEOs := make([]float64, model.HorizonMonths)

	var windowSum float64
	windowStart := 0

	for i := range months {
		newCEOs[i] = a.NewCEOsPerMonth
		if i == 0 {
			newCEOs[i] = a.InitialCEOs
		}
		windowSum += newCEOs[i]

		start := WindowStart(i, a.TenureMonths)
		for windowStart < start {
			windowSum -= newCEOs[windowStart]
			windowStart++
		}

		months[i] = monthRecord(a, i, newCEOs[i], windowSum)
	}
	return months
}

// WindowStart returns the first month index still inside the tenure window
// ending at month i, clamped to the first month.
func WindowStart(i int, tenure float64) int {
	start := int(math.Ceil(float64(i) - tenure + 1))
	if start < 0 {
		return 0
	}
	if start > i+1 {
		return i + 1
	}
	return start
}

func monthRecord(a model.Assumptions, i int, newCEOs, active float64) model.MonthRecord {
	m := model.MonthRecord{
		Index:      i,
		Year:       model.YearOf(i),
		MonthName:  model.MonthNameOf(i),
		NewCEOs:    newCEOs,
		ActiveCEOs: active,
		Workshops:  a.WorkshopBasePerMonth,
	}

	if model.IsQuarterEnd(i) {
		m.Workshops += a.WorkshopQuarterBonus
	}
	if model.IsQuarterStart(i) {
		m.Sprints = a.SprintsPerQuarter
	}
	m.OnDemandCourses = a.OnDemandCourses

	m.CEORevenue = m.ActiveCEOs * a.CEOPricePerMonth
	m.WorkshopRevenue = m.Workshops * a.WorkshopPrice
	m.SprintRevenue = m.Sprints * a.SprintPrice
	m.OnDemandRevenue = m.OnDemandCourses * a.OnDemandPrice
	m.TotalRevenue = m.CEORevenue + m.WorkshopRevenue + m.SprintRevenue + m.OnDemandRevenue

	m.CEOHours = m.ActiveCEOs * a.CEOHoursPerMonth()
	m.WorkshopHours = m.Workshops * a.HoursPerWorkshop
	m.SprintHours = m.Sprints * a.HoursPerSprint
	m.TotalHours = m.CEOHours + m.WorkshopHours + m.SprintHours
	m.TotalDays = m.TotalHours / a.HoursPerDay

	return m
}
