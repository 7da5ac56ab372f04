package model

import "strconv"

// Projection horizon.
const (
	BaseYear      = 2026
	MonthsPerYear = 12
	HorizonYears  = 3
	HorizonMonths = MonthsPerYear * HorizonYears
)

// MonthNames are the three-letter labels used in the Month column.
var MonthNames = [MonthsPerYear]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Years returns the calendar years covered by the projection.
func Years() []int {
	years := make([]int, HorizonYears)
	for i := range years {
		years[i] = BaseYear + i
	}
	return years
}

// YearOf returns the calendar year of month index i (0 = Jan of BaseYear).
func YearOf(i int) int {
	return BaseYear + i/MonthsPerYear
}

// MonthNameOf returns the month label of month index i.
func MonthNameOf(i int) string {
	return MonthNames[i%MonthsPerYear]
}

// IsQuarterEnd reports whether month index i falls in Mar, Jun, Sep or Dec.
func IsQuarterEnd(i int) bool {
	return i%3 == 2
}

// IsQuarterStart reports whether month index i falls in Jan, Apr, Jul or Oct.
func IsQuarterStart(i int) bool {
	return i%3 == 0
}

// MonthRecord holds the computed metrics for one month of the horizon.
type MonthRecord struct {
	Index     int
	Year      int
	MonthName string

	NewCEOs         float64
	ActiveCEOs      float64
	Workshops       float64
	Sprints         float64
	OnDemandCourses float64

	CEORevenue      float64
	WorkshopRevenue float64
	SprintRevenue   float64
	OnDemandRevenue float64
	TotalRevenue    float64

	CEOHours      float64
	WorkshopHours float64
	SprintHours   float64
	TotalHours    float64
	TotalDays     float64
}

// Label returns e.g. "Jan 2026".
func (m MonthRecord) Label() string {
	return m.MonthName + " " + strconv.Itoa(m.Year)
}

// YearSummary holds the six rolled-up metrics for one calendar year.
type YearSummary struct {
	Year            int
	CEORevenue      float64
	WorkshopRevenue float64
	SprintRevenue   float64
	OnDemandRevenue float64
	TotalRevenue    float64
	TotalDays       float64
}

// Add folds a month into the summary.
func (y *YearSummary) Add(m MonthRecord) {
	y.CEORevenue += m.CEORevenue
	y.WorkshopRevenue += m.WorkshopRevenue
	y.SprintRevenue += m.SprintRevenue
	y.OnDemandRevenue += m.OnDemandRevenue
	y.TotalRevenue += m.TotalRevenue
	y.TotalDays += m.TotalDays
}

// Projection is the full computed model.
type Projection struct {
	Assumptions Assumptions
	Months      []MonthRecord
	Years       []YearSummary
	Totals      YearSummary // Year is zero; sums across the horizon
}
