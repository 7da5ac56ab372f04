// Package workbook lays out the ScaleOS model as a grid of cells and writes
// it as an .xlsx file.
package workbook

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/scaleos/internal/model"
)

// Fixed sheet coordinates. Summary formulas and the Active_CEOs window refer
// to these rows, so moving any of them breaks existing workbooks.
const (
	TitleCell       = "E1"
	YearHeaderRow   = 6
	SummaryFirstRow = 7
	HeaderRow       = 14
	FirstDataRow    = 15
	LastDataRow     = FirstDataRow + model.HorizonMonths - 1
)

// DefaultSheet names the worksheet when none is configured.
const DefaultSheet = "Model"

// Absolute references to the editable input cells.
const (
	TenureRef        = "$F$2"
	InitialCEOsRef   = "$F$3"
	NewCEOsRef       = "$F$4"
	OnDemandPriceRef = "$F$5"
)

// Style identifies a cell format. Writers map each style to their own
// representation.
type Style int

const (
	StyleNone Style = iota
	StyleTitle
	StyleInputLabel
	StyleInputValue
	StyleSummaryLabel
	StyleYearHeader
	StyleColumnHeader
	StyleCurrency
	StyleDecimal
)

// Cell is one populated cell. Formula is stored without the leading '='
// and takes precedence over Value.
type Cell struct {
	Ref     string
	Value   any
	Formula string
	Style   Style
}

// Column describes one column of the monthly table.
type Column struct {
	Letter string
	Header string
	Width  float64
}

// Columns lists the monthly table columns left to right.
var Columns = []Column{
	{"A", "Year", 8},
	{"B", "Month", 10},
	{"C", "New_CEOs", 12},
	{"D", "Active_CEOs", 14},
	{"E", "CEO Revenue ($)", 16},
	{"F", "Workshops", 12},
	{"G", "Workshop Revenue ($)", 18},
	{"H", "Sprints", 10},
	{"I", "Sprint Revenue ($)", 16},
	{"J", "CEO Hours", 12},
	{"K", "Workshop Hours", 15},
	{"L", "Sprint Hours", 12},
	{"M", "Total Hours", 13},
	{"N", "Total Days", 12},
	{"O", "Total Revenue ($)", 16},
	{"P", "On-Demand Courses", 18},
	{"Q", "On-Demand Revenue ($)", 20},
}

// SummaryMetric is one row of the yearly summary block.
type SummaryMetric struct {
	Label  string
	Column string // monthly column being summed
	Style  Style
}

// SummaryMetrics lists the summary rows top to bottom starting at SummaryFirstRow.
var SummaryMetrics = []SummaryMetric{
	{"CEO Revenue ($)", "E", StyleCurrency},
	{"Workshop Revenue ($)", "G", StyleCurrency},
	{"Sprint Revenue ($)", "I", StyleCurrency},
	{"On-Demand Revenue ($)", "Q", StyleCurrency},
	{"Total Revenue ($)", "O", StyleCurrency},
	{"Days", "N", StyleDecimal},
}

// yearColumns hold the summary values for each projection year.
var yearColumns = []string{"E", "F", "G"}

// Grid is a fully laid-out worksheet.
type Grid struct {
	Sheet   string
	Cells   []Cell
	Columns []Column
}

// Cell returns the cell at ref.
func (g Grid) Cell(ref string) (Cell, bool) {
	for _, c := range g.Cells {
		if c.Ref == ref {
			return c, true
		}
	}
	return Cell{}, false
}

// Ref builds an A1-style reference.
func Ref(col string, row int) string {
	return col + strconv.Itoa(row)
}

// DataRow returns the sheet row holding month index i.
func DataRow(i int) int {
	return FirstDataRow + i
}

// Layout places every cell of the model for the given assumptions. The
// result depends only on its arguments.
func Layout(a model.Assumptions, sheet string) Grid {
	g := Grid{Sheet: sheet, Columns: Columns}

	g.Cells = append(g.Cells, inputCells(a)...)
	g.Cells = append(g.Cells, summaryHeaderCells()...)
	g.Cells = append(g.Cells, headerCells()...)
	for i := 0; i < model.HorizonMonths; i++ {
		g.Cells = append(g.Cells, monthCells(a, i)...)
	}
	g.Cells = append(g.Cells, summaryFormulaCells()...)

	return g
}

func inputCells(a model.Assumptions) []Cell {
	inputs := []struct {
		label string
		value float64
	}{
		{"Tenure (months)", a.TenureMonths},
		{"Initial CEOs (Month 1)", a.InitialCEOs},
		{"New CEOs added / month", a.NewCEOsPerMonth},
		{"On-Demand price per course", a.OnDemandPrice},
	}

	cells := []Cell{{Ref: TitleCell, Value: "Inputs", Style: StyleTitle}}
	for i, in := range inputs {
		row := 2 + i
		cells = append(cells,
			Cell{Ref: Ref("E", row), Value: in.label, Style: StyleInputLabel},
			Cell{Ref: Ref("F", row), Value: in.value, Style: StyleInputValue},
		)
	}
	return cells
}

func summaryHeaderCells() []Cell {
	var cells []Cell
	for i, m := range SummaryMetrics {
		cells = append(cells, Cell{Ref: Ref("D", SummaryFirstRow+i), Value: m.Label, Style: StyleSummaryLabel})
	}
	for i, year := range model.Years() {
		cells = append(cells, Cell{Ref: Ref(yearColumns[i], YearHeaderRow), Value: year, Style: StyleYearHeader})
	}
	return cells
}

func headerCells() []Cell {
	cells := make([]Cell, len(Columns))
	for i, c := range Columns {
		cells[i] = Cell{Ref: Ref(c.Letter, HeaderRow), Value: c.Header, Style: StyleColumnHeader}
	}
	return cells
}

func monthCells(a model.Assumptions, i int) []Cell {
	r := DataRow(i)
	ref := func(col string) string { return Ref(col, r) }

	newCEOs := NewCEOsRef
	if i == 0 {
		newCEOs = InitialCEOsRef
	}

	workshops := a.WorkshopBasePerMonth
	if model.IsQuarterEnd(i) {
		workshops += a.WorkshopQuarterBonus
	}
	var sprints float64
	if model.IsQuarterStart(i) {
		sprints = a.SprintsPerQuarter
	}

	return []Cell{
		{Ref: ref("A"), Value: model.YearOf(i)},
		{Ref: ref("B"), Value: model.MonthNameOf(i)},
		{Ref: ref("C"), Formula: newCEOs},
		{Ref: ref("D"), Formula: ActiveCEOsFormula(r)},
		{Ref: ref("E"), Formula: product(ref("D"), a.CEOPricePerMonth), Style: StyleCurrency},
		{Ref: ref("F"), Value: workshops},
		{Ref: ref("G"), Formula: product(ref("F"), a.WorkshopPrice), Style: StyleCurrency},
		{Ref: ref("H"), Value: sprints},
		{Ref: ref("I"), Formula: product(ref("H"), a.SprintPrice), Style: StyleCurrency},
		{Ref: ref("J"), Formula: product(ref("D"), a.SessionsPerCEOMonth, a.HoursPerSession), Style: StyleDecimal},
		{Ref: ref("K"), Formula: product(ref("F"), a.HoursPerWorkshop), Style: StyleDecimal},
		{Ref: ref("L"), Formula: product(ref("H"), a.HoursPerSprint), Style: StyleDecimal},
		{Ref: ref("M"), Formula: ref("J") + "+" + ref("K") + "+" + ref("L"), Style: StyleDecimal},
		{Ref: ref("N"), Formula: ref("M") + "/" + number(a.HoursPerDay), Style: StyleDecimal},
		{Ref: ref("O"), Formula: ref("E") + "+" + ref("G") + "+" + ref("I") + "+" + ref("Q"), Style: StyleCurrency},
		{Ref: ref("P"), Value: a.OnDemandCourses},
		{Ref: ref("Q"), Formula: ref("P") + "*" + OnDemandPriceRef, Style: StyleCurrency},
	}
}

func summaryFormulaCells() []Cell {
	var cells []Cell
	for yi, year := range model.Years() {
		for mi, m := range SummaryMetrics {
			cells = append(cells, Cell{
				Ref:     Ref(yearColumns[yi], SummaryFirstRow+mi),
				Formula: YearSumFormula(m.Column, year),
				Style:   m.Style,
			})
		}
	}
	return cells
}

// ActiveCEOsFormula returns the trailing-window count for the month at row.
//
// Every row from the first month through the current one is tested against
// the tenure window, so the window start follows tenure edits in F2. An
// OFFSET-based lookback stops sliding once it runs out of history and
// flatlines.
func ActiveCEOsFormula(row int) string {
	history := fmt.Sprintf("$C$%d:C%d", FirstDataRow, row)
	return fmt.Sprintf("SUMPRODUCT(%s,--(ROW(%s)>=ROW(C%d)-%s+1))", history, history, row, TenureRef)
}

// YearSumFormula sums a monthly column over the rows whose Year equals year.
func YearSumFormula(col string, year int) string {
	return fmt.Sprintf("SUMIFS($%s$%d:$%s$%d,$A$%d:$A$%d,%d)",
		col, FirstDataRow, col, LastDataRow, FirstDataRow, LastDataRow, year)
}

func product(ref string, factors ...float64) string {
	s := ref
	for _, f := range factors {
		s += "*" + number(f)
	}
	return s
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
