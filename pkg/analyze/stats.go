package analyze

import "github.com/taoky/kizami/pkg/logentry"

// Report collects every statistic of an Analyzer.
type Report struct {
	Origin  string `json:"origin"`
	Entries int    `json:"entries"`

	Total                int          `json:"total_accesses"`
	Hourly               HourlyCounts `json:"hourly"`
	BusiestHour          int          `json:"busiest_hour"`
	QuietestHour         int          `json:"quietest_hour"`
	BusiestTwoHourWindow int          `json:"busiest_two_hour_window"`

	DayRange    DayRangeFlag                `json:"day_range"`
	Daily       [logentry.MaxDayOfMonth]int `json:"daily"`
	BusiestDay  int                         `json:"busiest_day"`
	QuietestDay int                         `json:"quietest_day"`

	Monthly         [logentry.MonthsPerYear]int     `json:"monthly"`
	BusiestMonth    int                             `json:"busiest_month"`
	QuietestMonth   int                             `json:"quietest_month"`
	AverageYears    float64                         `json:"average_years"`
	MonthlyAverages [logentry.MonthsPerYear]float64 `json:"monthly_averages"`
}

func (a *Analyzer) Report() Report {
	hourly := a.AnalyzeHourly()
	return Report{
		Origin:  a.entries.Origin().String(),
		Entries: a.entries.Len(),

		Total:                hourly.Total(),
		Hourly:               hourly,
		BusiestHour:          hourly.Busiest(),
		QuietestHour:         hourly.Quietest(),
		BusiestTwoHourWindow: hourly.BusiestTwoHourWindow(),

		DayRange:    a.Config.DayRange,
		Daily:       a.DayCounts(),
		BusiestDay:  a.BusiestDay(),
		QuietestDay: a.QuietestDay(),

		Monthly:         a.MonthlyTotals(),
		BusiestMonth:    a.BusiestMonth(),
		QuietestMonth:   a.QuietestMonth(),
		AverageYears:    a.AverageYears(),
		MonthlyAverages: a.MonthlyAverages(),
	}
}
