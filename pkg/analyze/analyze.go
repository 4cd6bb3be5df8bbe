package analyze

import (
	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/taoky/kizami/pkg/logentry"
	"github.com/taoky/kizami/pkg/source"
)

type AnalyzerConfig struct {
	AverageSpan  bool
	AverageYears float64
	DayRange     DayRangeFlag
	Format       FormatFlag
	LogOutput    string
	NoColor      bool
}

func (c *AnalyzerConfig) InstallFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&c.AverageSpan, "average-span", c.AverageSpan, "Divide monthly averages by the span of years in the data")
	flags.Float64Var(&c.AverageYears, "average-years", c.AverageYears, "Number of years monthly averages are divided by")
	flags.Var(&c.DayRange, "day-range", "Days considered for busiest/quietest day (legacy|calendar)")
	flags.VarP(&c.Format, "format", "f", "Output format (see \"kizami list formats\")")
	flags.StringVarP(&c.LogOutput, "outlog", "o", c.LogOutput, "Change log output file")
	flags.BoolVar(&c.NoColor, "no-color", c.NoColor, "Disable colored output")
}

func DefaultConfig() AnalyzerConfig {
	return AnalyzerConfig{
		AverageYears: 5,
		DayRange:     DayRangeLegacy,
		Format:       FormatTable,
	}
}

// Analyzer computes access statistics over a loaded collection. Every query
// scans the collection again; nothing is cached between calls.
type Analyzer struct {
	Config AnalyzerConfig

	entries *source.Collection
}

func NewAnalyzer(c AnalyzerConfig, entries *source.Collection) *Analyzer {
	if entries == nil {
		entries = source.NewCollection(nil, source.OriginResource)
	}
	if c.NoColor {
		color.NoColor = true
	}
	return &Analyzer{
		Config:  c,
		entries: entries,
	}
}

func (a *Analyzer) Entries() *source.Collection {
	return a.entries
}

// AnalyzeHourly counts accesses per hour. Entries with an hour outside 0-23
// are not counted.
func (a *Analyzer) AnalyzeHourly() HourlyCounts {
	return hourlyCounts(a.entries.All())
}

func (a *Analyzer) TotalAccesses() int {
	return a.AnalyzeHourly().Total()
}

func (a *Analyzer) BusiestHour() int {
	return a.AnalyzeHourly().Busiest()
}

func (a *Analyzer) QuietestHour() int {
	return a.AnalyzeHourly().Quietest()
}

func (a *Analyzer) BusiestTwoHourWindow() int {
	return a.AnalyzeHourly().BusiestTwoHourWindow()
}

func (a *Analyzer) calendarDays() bool {
	return a.Config.DayRange == DayRangeCalendar
}

// DayCounts counts accesses per day of month; index 0 is day 1.
func (a *Analyzer) DayCounts() [logentry.MaxDayOfMonth]int {
	var days [logentry.MaxDayOfMonth]int
	copy(days[:], dayCounts(a.entries.All(), logentry.MaxDayOfMonth, a.calendarDays()))
	return days
}

// BusiestDay returns the day of month (1-31) with the most accesses, or 0
// if no entry falls on a counted day.
func (a *Analyzer) BusiestDay() int {
	idx, value := firstMax(dayCounts(a.entries.All(), logentry.MaxDayOfMonth, a.calendarDays()))
	if value == 0 {
		return 0
	}
	return idx + 1
}

// QuietestDay returns the day of month with the fewest accesses. With
// DayRangeLegacy only days 1-28 are considered.
func (a *Analyzer) QuietestDay() int {
	days := legacyQuietDays
	if a.calendarDays() {
		days = logentry.MaxDayOfMonth
	}
	return firstMin(dayCounts(a.entries.All(), days, a.calendarDays())) + 1
}

// MonthlyTotals returns accesses per month; index 0 is January.
func (a *Analyzer) MonthlyTotals() [logentry.MonthsPerYear]int {
	return monthCounts(a.entries.All())
}

// BusiestMonth returns the month (1-12) with the most accesses. Ties and an
// empty collection resolve to the earliest month.
func (a *Analyzer) BusiestMonth() int {
	m := a.MonthlyTotals()
	idx, _ := firstMax(m[:])
	return idx + 1
}

func (a *Analyzer) QuietestMonth() int {
	m := a.MonthlyTotals()
	return firstMin(m[:]) + 1
}

// AverageYears returns the divisor used by MonthlyAverages.
func (a *Analyzer) AverageYears() float64 {
	if !a.Config.AverageSpan {
		return a.Config.AverageYears
	}
	n := a.entries.Len()
	if n == 0 {
		return 0
	}
	// The collection is sorted, year first
	return float64(a.entries.At(n-1).Year() - a.entries.At(0).Year() + 1)
}

// MonthlyAverages divides each monthly total by AverageYears. A
// non-positive divisor yields all zeros.
func (a *Analyzer) MonthlyAverages() [logentry.MonthsPerYear]float64 {
	var averages [logentry.MonthsPerYear]float64
	years := a.AverageYears()
	if years <= 0 {
		return averages
	}
	for i, c := range a.MonthlyTotals() {
		averages[i] = float64(c) / years
	}
	return averages
}
