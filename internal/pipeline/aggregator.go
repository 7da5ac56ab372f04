package pipeline

import "github.com/theirongolddev/scaleos/internal/model"

// AggregateYears rolls monthly records up into one summary per projection
// year, in year order. Months outside the horizon are ignored.
func AggregateYears(months []model.MonthRecord) []model.YearSummary {
	years := model.Years()
	summaries := make([]model.YearSummary, len(years))
	idx := make(map[int]int, len(years))
	for i, y := range years {
		summaries[i].Year = y
		idx[y] = i
	}

	for _, m := range months {
		i, ok := idx[m.Year]
		if !ok {
			continue
		}
		summaries[i].Add(m)
	}
	return summaries
}

// Totals sums every month of the horizon.
func Totals(months []model.MonthRecord) model.YearSummary {
	var total model.YearSummary
	for _, m := range months {
		total.Add(m)
	}
	return total
}

// FilterByYear returns the months belonging to a calendar year.
func FilterByYear(months []model.MonthRecord, year int) []model.MonthRecord {
	var out []model.MonthRecord
	for _, m := range months {
		if m.Year == year {
			out = append(out, m)
		}
	}
	return out
}

// Series extracts one metric per month, e.g. for charting.
func Series(months []model.MonthRecord, metric func(model.MonthRecord) float64) []float64 {
	values := make([]float64, len(months))
	for i, m := range months {
		values[i] = metric(m)
	}
	return values
}

// PeakActiveCEOs returns the largest active-CEO count and the month it
// first occurs in.
func PeakActiveCEOs(months []model.MonthRecord) (float64, model.MonthRecord) {
	var peak float64
	var at model.MonthRecord
	for i, m := range months {
		if i == 0 || m.ActiveCEOs > peak {
			peak = m.ActiveCEOs
			at = m
		}
	}
	return peak, at
}
