package pipeline

import (
	"testing"

	"github.com/theirongolddev/scaleos/internal/model"
)

func TestAggregateYears_Base2026(t *testing.T) {
	p := mustBuild(t, model.DefaultAssumptions())
	if len(p.Years) != 3 {
		t.Fatalf("len(Years) = %d, want 3", len(p.Years))
	}

	y := p.Years[0]
	if y.Year != 2026 {
		t.Fatalf("Years[0].Year = %d, want 2026", y.Year)
	}
	// 63 CEO-months, 16 workshops, 4 sprints.
	checks := []struct {
		name      string
		got, want float64
	}{
		{"CEO revenue", y.CEORevenue, 315000},
		{"workshop revenue", y.WorkshopRevenue, 120000},
		{"sprint revenue", y.SprintRevenue, 100000},
		{"on-demand revenue", y.OnDemandRevenue, 0},
		{"total revenue", y.TotalRevenue, 535000},
		{"days", y.TotalDays, 40.125},
	}
	for _, c := range checks {
		if !approxEqual(c.got, c.want) {
			t.Errorf("2026 %s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestAggregateYears_Conservation(t *testing.T) {
	presetLike := model.DefaultAssumptions()
	presetLike.TenureMonths = 4.5
	presetLike.NewCEOsPerMonth = 1.5
	presetLike.OnDemandCourses = 7

	for _, a := range []model.Assumptions{model.DefaultAssumptions(), presetLike} {
		p := mustBuild(t, a)

		var yearly, yearlyDays float64
		for _, y := range p.Years {
			yearly += y.TotalRevenue
			yearlyDays += y.TotalDays
		}
		var monthly, monthlyDays float64
		for _, m := range p.Months {
			monthly += m.TotalRevenue
			monthlyDays += m.TotalDays
		}

		if !approxEqual(yearly, monthly) {
			t.Errorf("yearly revenue %v != monthly %v", yearly, monthly)
		}
		if !approxEqual(yearlyDays, monthlyDays) {
			t.Errorf("yearly days %v != monthly %v", yearlyDays, monthlyDays)
		}
		if !approxEqual(p.Totals.TotalRevenue, monthly) {
			t.Errorf("Totals.TotalRevenue = %v, want %v", p.Totals.TotalRevenue, monthly)
		}
	}
}

func TestAggregateYears_IgnoresOutOfHorizon(t *testing.T) {
	months := []model.MonthRecord{
		{Year: 2026, TotalRevenue: 10},
		{Year: 2030, TotalRevenue: 99},
	}
	years := AggregateYears(months)
	if years[0].TotalRevenue != 10 {
		t.Fatalf("2026 total = %v, want 10", years[0].TotalRevenue)
	}
	for _, y := range years[1:] {
		if y.TotalRevenue != 0 {
			t.Fatalf("%d total = %v, want 0", y.Year, y.TotalRevenue)
		}
	}
}

func TestFilterByYear(t *testing.T) {
	months := Project(model.DefaultAssumptions())
	got := FilterByYear(months, 2027)
	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}
	if got[0].Index != 12 || got[11].Index != 23 {
		t.Fatalf("indexes %d..%d, want 12..23", got[0].Index, got[11].Index)
	}
	if FilterByYear(months, 2031) != nil {
		t.Fatal("FilterByYear(2031) should be empty")
	}
}

func TestPeakActiveCEOs(t *testing.T) {
	peak, at := PeakActiveCEOs(Project(model.DefaultAssumptions()))
	if peak != 7 {
		t.Fatalf("peak = %v, want 7", peak)
	}
	if at.Label() != "Jun 2026" {
		t.Fatalf("peak month = %s, want Jun 2026", at.Label())
	}
}
