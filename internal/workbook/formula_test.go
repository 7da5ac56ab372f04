package workbook

import (
	"math"
	"strings"
	"testing"

	"github.com/theirongolddev/scaleos/internal/config"
	"github.com/theirongolddev/scaleos/internal/pipeline"

	"github.com/Knetic/govaluate"
)

// evalOrder lists the arithmetic columns so every reference is filled
// before it is used (O reads Q).
var evalOrder = []string{"E", "G", "I", "J", "K", "L", "M", "N", "Q", "O"}

func evalFormula(t *testing.T, formula string, params map[string]any) float64 {
	t.Helper()
	expr, err := govaluate.NewEvaluableExpression(strings.ReplaceAll(formula, "$", ""))
	if err != nil {
		t.Fatalf("parse %q: %v", formula, err)
	}
	v, err := expr.Evaluate(params)
	if err != nil {
		t.Fatalf("evaluate %q: %v", formula, err)
	}
	f, ok := v.(float64)
	if !ok {
		t.Fatalf("evaluate %q = %T, want float64", formula, v)
	}
	return f
}

// Row formulas evaluated with the engine's counts must reproduce the
// engine's revenues, hours and days.
func TestRowFormulasMatchProjection(t *testing.T) {
	for _, name := range config.PresetNames() {
		a, err := config.Preset(name)
		if err != nil {
			t.Fatal(err)
		}
		a.OnDemandCourses = max(a.OnDemandCourses, 2)

		g := Layout(a, DefaultSheet)
		months := pipeline.Project(a)

		for i, m := range months {
			r := DataRow(i)
			params := map[string]any{
				"F5":        a.OnDemandPrice,
				Ref("D", r): m.ActiveCEOs,
				Ref("F", r): m.Workshops,
				Ref("H", r): m.Sprints,
				Ref("P", r): m.OnDemandCourses,
			}
			for _, col := range evalOrder {
				ref := Ref(col, r)
				params[ref] = evalFormula(t, mustCell(t, g, ref).Formula, params)
			}

			want := map[string]float64{
				"E": m.CEORevenue,
				"G": m.WorkshopRevenue,
				"I": m.SprintRevenue,
				"J": m.CEOHours,
				"K": m.WorkshopHours,
				"L": m.SprintHours,
				"M": m.TotalHours,
				"N": m.TotalDays,
				"O": m.TotalRevenue,
				"Q": m.OnDemandRevenue,
			}
			for col, w := range want {
				got := params[Ref(col, r)].(float64)
				if math.Abs(got-w) > 1e-9*math.Max(1, math.Abs(w)) {
					t.Errorf("%s: %s%d = %v, engine has %v", name, col, r, got, w)
				}
			}
		}
	}
}

// Static counts written as values must match the engine for every preset.
func TestRowValuesMatchProjection(t *testing.T) {
	for _, name := range config.PresetNames() {
		a, _ := config.Preset(name)
		g := Layout(a, DefaultSheet)
		for i, m := range pipeline.Project(a) {
			r := DataRow(i)
			checks := map[string]float64{"F": m.Workshops, "H": m.Sprints, "P": m.OnDemandCourses}
			for col, want := range checks {
				if got := mustCell(t, g, Ref(col, r)).Value; got != want {
					t.Errorf("%s: %s%d = %v, engine has %v", name, col, r, got, want)
				}
			}
		}
	}
}
