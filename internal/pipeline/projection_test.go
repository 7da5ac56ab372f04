package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/scaleos/internal/model"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func mustBuild(t *testing.T, a model.Assumptions) model.Projection {
	t.Helper()
	p, err := Build(a)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func TestProject_DefaultActiveCEOs(t *testing.T) {
	months := Project(model.DefaultAssumptions())
	if len(months) != model.HorizonMonths {
		t.Fatalf("len(months) = %d, want %d", len(months), model.HorizonMonths)
	}

	want := []float64{2, 3, 4, 5, 6, 7, 6, 6, 6, 6, 6, 6}
	for i, w := range want {
		if got := months[i].ActiveCEOs; got != w {
			t.Errorf("active[%d] = %v, want %v", i, got, w)
		}
	}
	for i := 12; i < len(months); i++ {
		if got := months[i].ActiveCEOs; got != 6 {
			t.Errorf("active[%d] = %v, want steady state 6", i, got)
		}
	}
}

func TestProject_WindowDropsOldCohorts(t *testing.T) {
	months := Project(model.DefaultAssumptions())

	// The two-CEO initial cohort leaves after six months.
	if months[5].ActiveCEOs == months[6].ActiveCEOs {
		t.Fatalf("active[5] = active[6] = %v, want the initial cohort to roll off", months[5].ActiveCEOs)
	}

	var cumulative float64
	for i := 0; i <= 10; i++ {
		cumulative += months[i].NewCEOs
	}
	if months[10].ActiveCEOs == cumulative {
		t.Fatalf("active[10] = %v equals the cumulative total, window not applied", cumulative)
	}
}

func TestProject_TenureShiftsWindow(t *testing.T) {
	a := model.DefaultAssumptions()
	base := Project(a)

	a.TenureMonths = 9
	longer := Project(a)

	if longer[10].ActiveCEOs != 9 {
		t.Fatalf("tenure 9: active[10] = %v, want 9", longer[10].ActiveCEOs)
	}
	if base[10].ActiveCEOs == longer[10].ActiveCEOs {
		t.Fatalf("active[10] unchanged by tenure: %v", base[10].ActiveCEOs)
	}
}

func TestProject_FractionalTenure(t *testing.T) {
	a := model.DefaultAssumptions()
	a.TenureMonths = 2.5
	months := Project(a)

	// Window predicate j >= i - 1.5 keeps months i-1 and i.
	if got := months[1].ActiveCEOs; got != 3 {
		t.Fatalf("active[1] = %v, want 3", got)
	}
	if got := months[5].ActiveCEOs; got != 2 {
		t.Fatalf("active[5] = %v, want 2", got)
	}
}

func TestProject_NewCEOs(t *testing.T) {
	months := Project(model.DefaultAssumptions())
	if months[0].NewCEOs != 2 {
		t.Fatalf("new[0] = %v, want 2", months[0].NewCEOs)
	}
	for i := 1; i < len(months); i++ {
		if months[i].NewCEOs != 1 {
			t.Fatalf("new[%d] = %v, want 1", i, months[i].NewCEOs)
		}
	}
}

func TestProject_WorkshopsAndSprints(t *testing.T) {
	months := Project(model.DefaultAssumptions())
	for i, m := range months {
		wantWorkshops := 1.0
		if i%12 == 2 || i%12 == 5 || i%12 == 8 || i%12 == 11 {
			wantWorkshops = 2
		}
		if m.Workshops != wantWorkshops {
			t.Errorf("workshops[%d] = %v, want %v", i, m.Workshops, wantWorkshops)
		}

		wantSprints := 0.0
		if i%12 == 0 || i%12 == 3 || i%12 == 6 || i%12 == 9 {
			wantSprints = 1
		}
		if m.Sprints != wantSprints {
			t.Errorf("sprints[%d] = %v, want %v", i, m.Sprints, wantSprints)
		}
	}
}

func TestProject_RowIdentities(t *testing.T) {
	a := model.DefaultAssumptions()
	a.OnDemandCourses = 3
	for i, m := range Project(a) {
		sum := m.CEORevenue + m.WorkshopRevenue + m.SprintRevenue + m.OnDemandRevenue
		if !approxEqual(m.TotalRevenue, sum) {
			t.Errorf("month %d: total revenue %v, want %v", i, m.TotalRevenue, sum)
		}
		if !approxEqual(m.OnDemandRevenue, 3*500) {
			t.Errorf("month %d: on-demand revenue %v, want 1500", i, m.OnDemandRevenue)
		}
		if !approxEqual(m.TotalDays, m.TotalHours/8) {
			t.Errorf("month %d: days %v, want hours/8 = %v", i, m.TotalDays, m.TotalHours/8)
		}
		if !approxEqual(m.CEOHours, m.ActiveCEOs*3) {
			t.Errorf("month %d: CEO hours %v, want %v", i, m.CEOHours, m.ActiveCEOs*3)
		}
	}
}

func TestProject_LabelsAndYears(t *testing.T) {
	months := Project(model.DefaultAssumptions())
	if got := months[0].Label(); got != "Jan 2026" {
		t.Fatalf("months[0].Label() = %q, want Jan 2026", got)
	}
	if got := months[35].Label(); got != "Dec 2028" {
		t.Fatalf("months[35].Label() = %q, want Dec 2028", got)
	}
	if got := months[12].Year; got != 2027 {
		t.Fatalf("months[12].Year = %d, want 2027", got)
	}
}

func TestBuild_RejectsInvalid(t *testing.T) {
	a := model.DefaultAssumptions()
	a.TenureMonths = 0
	if _, err := Build(a); !errors.Is(err, model.ErrInvalidTenure) {
		t.Fatalf("Build(tenure=0) err = %v, want ErrInvalidTenure", err)
	}

	a = model.DefaultAssumptions()
	a.NewCEOsPerMonth = -1
	if _, err := Build(a); !errors.Is(err, model.ErrNegativeInput) {
		t.Fatalf("Build(rate=-1) err = %v, want ErrNegativeInput", err)
	}
}

func TestWindowStart(t *testing.T) {
	tests := []struct {
		i      int
		tenure float64
		want   int
	}{
		{0, 6, 0},
		{5, 6, 0},
		{6, 6, 1},
		{10, 6, 5},
		{10, 2.5, 9},
		{3, 0.5, 4},
	}
	for _, tt := range tests {
		if got := WindowStart(tt.i, tt.tenure); got != tt.want {
			t.Errorf("WindowStart(%d, %v) = %d, want %d", tt.i, tt.tenure, got, tt.want)
		}
	}
}

func TestProject_DefaultScenario(t *testing.T) {
	months := Project(model.DefaultAssumptions())

	jan := months[0]
	if jan.NewCEOs != 2 || jan.ActiveCEOs != 2 || jan.CEORevenue != 10000 {
		t.Fatalf("Jan 2026 new/active/revenue = %v/%v/%v, want 2/2/10000", jan.NewCEOs, jan.ActiveCEOs, jan.CEORevenue)
	}
	if jan.Workshops != 1 || jan.Sprints != 1 || jan.SprintRevenue != 25000 {
		t.Fatalf("Jan 2026 workshops/sprints/sprint revenue = %v/%v/%v, want 1/1/25000", jan.Workshops, jan.Sprints, jan.SprintRevenue)
	}

	// Window for Jul 2026 covers indexes 1..6.
	jul := months[6]
	if jul.NewCEOs != 1 || jul.ActiveCEOs != 6 || jul.CEORevenue != 30000 {
		t.Fatalf("Jul 2026 new/active/revenue = %v/%v/%v, want 1/6/30000", jul.NewCEOs, jul.ActiveCEOs, jul.CEORevenue)
	}
}
