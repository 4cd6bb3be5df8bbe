package analyze

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/taoky/kizami/pkg/logentry"
	"github.com/taoky/kizami/pkg/source"
	"github.com/taoky/kizami/pkg/synth"
)

func atHours(hours ...int) []logentry.Entry {
	entries := make([]logentry.Entry, 0, len(hours))
	for _, h := range hours {
		entries = append(entries, logentry.New(2022, 1, 1, h, 0))
	}
	return entries
}

func newTestAnalyzer(entries []logentry.Entry) *Analyzer {
	return NewAnalyzer(DefaultConfig(), source.NewCollection(entries, source.OriginResource))
}

func TestHourlyScenario(t *testing.T) {
	as := assert.New(t)
	a := newTestAnalyzer(atHours(0, 0, 5, 23))
	h := a.AnalyzeHourly()
	as.Equal(2, h[0])
	as.Equal(1, h[5])
	as.Equal(1, h[23])
	as.Equal(4, a.TotalAccesses())
	as.Equal(0, a.BusiestHour())
	as.Equal(1, a.QuietestHour())
}

func TestEmptyCollection(t *testing.T) {
	as := assert.New(t)
	for _, a := range []*Analyzer{newTestAnalyzer(nil), NewAnalyzer(DefaultConfig(), nil)} {
		as.Equal(0, a.TotalAccesses())
		as.Equal(0, a.BusiestHour())
		as.Equal(0, a.QuietestHour())
		as.Equal(0, a.BusiestTwoHourWindow())
		as.Equal(0, a.BusiestDay())
		as.Equal(1, a.QuietestDay())
		as.Equal(1, a.BusiestMonth())
		as.Equal(1, a.QuietestMonth())
		as.Equal([12]float64{}, a.MonthlyAverages())
	}
}

func TestBusiestHour(t *testing.T) {
	as := assert.New(t)
	as.Equal(3, newTestAnalyzer(atHours(1, 3, 3, 3, 7, 7)).BusiestHour())

	// Plateau: the first hour reaching the maximum wins
	var all []int
	for h := range 24 {
		all = append(all, h, h)
	}
	a := newTestAnalyzer(atHours(all...))
	as.Equal(0, a.BusiestHour())
	as.Equal(0, a.QuietestHour())
	as.Equal(0, a.BusiestTwoHourWindow())

	as.Equal(4, newTestAnalyzer(atHours(2, 4, 4, 9, 9)).BusiestHour())
}

func TestQuietestHour(t *testing.T) {
	as := assert.New(t)
	as.Equal(0, newTestAnalyzer(atHours(5)).QuietestHour())

	var busy []int
	for h := range 24 {
		busy = append(busy, h)
		if h != 6 && h != 9 {
			busy = append(busy, h)
		}
	}
	as.Equal(6, newTestAnalyzer(atHours(busy...)).QuietestHour())
}

func TestBusiestTwoHourWindow(t *testing.T) {
	as := assert.New(t)
	var hours []int
	for range 5 {
		hours = append(hours, 2, 3)
	}
	h := newTestAnalyzer(atHours(hours...)).AnalyzeHourly()
	as.Equal(2, h.BusiestTwoHourWindow())

	as.Equal(22, newTestAnalyzer(atHours(1, 22, 23)).BusiestTwoHourWindow())
	as.Equal(0, newTestAnalyzer(atHours(0, 1, 5, 6)).BusiestTwoHourWindow())
}

func TestTotalMatchesCollection(t *testing.T) {
	entries := synth.New(3).Entries(2022, 500)
	a := newTestAnalyzer(entries)
	assert.Equal(t, len(entries), a.TotalAccesses())

	sum := 0
	for _, c := range a.MonthlyTotals() {
		assert.GreaterOrEqual(t, c, 0)
		sum += c
	}
	assert.Equal(t, len(entries), sum)
}

func TestOutOfRangeFieldsAreNotCounted(t *testing.T) {
	as := assert.New(t)
	a := newTestAnalyzer([]logentry.Entry{
		logentry.New(2022, 13, 40, 30, 0),
		logentry.New(2022, 2, 3, 4, 0),
	})
	as.Equal(1, a.TotalAccesses())
	as.Equal(1, a.MonthlyTotals()[1])
	as.Equal(3, a.BusiestDay())
}

func onDays(days ...int) []logentry.Entry {
	entries := make([]logentry.Entry, 0, len(days))
	for _, d := range days {
		entries = append(entries, logentry.New(2023, 1, d, 12, 0))
	}
	return entries
}

func TestDays(t *testing.T) {
	as := assert.New(t)
	a := newTestAnalyzer(onDays(30, 30, 5, 5, 31, 31, 31))
	as.Equal(31, a.BusiestDay())
	as.Equal(1, a.QuietestDay())

	a = newTestAnalyzer(onDays(5, 5, 7, 7))
	as.Equal(5, a.BusiestDay())

	// Legacy quietest day never looks past the 28th
	var most []int
	for d := 1; d <= 28; d++ {
		most = append(most, d)
	}
	a = newTestAnalyzer(onDays(most...))
	as.Equal(1, a.QuietestDay())
	as.Equal(1, a.BusiestDay())
}

func TestDayRangeCalendar(t *testing.T) {
	as := assert.New(t)
	c := DefaultConfig()
	c.DayRange = DayRangeCalendar

	var entries []logentry.Entry
	for d := 1; d <= 30; d++ {
		entries = append(entries, logentry.New(2023, 1, d, 0, 0))
	}
	// February 30th does not exist
	entries = append(entries, logentry.New(2023, 2, 30, 0, 0), logentry.New(2023, 2, 30, 1, 0))
	a := NewAnalyzer(c, source.NewCollection(entries, source.OriginResource))
	as.Equal(31, a.QuietestDay())
	as.Equal(1, a.BusiestDay())
	as.Equal(1, a.DayCounts()[29])

	legacy := newTestAnalyzer(entries)
	as.Equal(30, legacy.BusiestDay())
	as.Equal(3, legacy.DayCounts()[29])
}

func inMonths(months ...int) []logentry.Entry {
	entries := make([]logentry.Entry, 0, len(months))
	for _, m := range months {
		entries = append(entries, logentry.New(2020, m, 1, 0, 0))
	}
	return entries
}

func TestMonths(t *testing.T) {
	as := assert.New(t)
	a := newTestAnalyzer(inMonths(1, 3, 3, 12, 12))
	as.Equal([12]int{1, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 2}, a.MonthlyTotals())
	as.Equal(3, a.BusiestMonth())
	as.Equal(2, a.QuietestMonth())

	var all []int
	for m := 1; m <= 12; m++ {
		all = append(all, m)
	}
	a = newTestAnalyzer(inMonths(all...))
	as.Equal(1, a.BusiestMonth())
	as.Equal(1, a.QuietestMonth())
}

func TestMonthlyAverages(t *testing.T) {
	as := assert.New(t)
	entries := []logentry.Entry{
		logentry.New(2018, 1, 1, 0, 0),
		logentry.New(2019, 1, 1, 0, 0),
		logentry.New(2020, 3, 1, 0, 0),
		logentry.New(2020, 1, 1, 0, 0),
		logentry.New(2020, 1, 2, 0, 0),
	}
	a := newTestAnalyzer(entries)
	avg := a.MonthlyAverages()
	as.InDelta(0.8, avg[0], 1e-9)
	as.InDelta(0.2, avg[2], 1e-9)
	as.Zero(avg[1])

	c := DefaultConfig()
	c.AverageSpan = true
	a = NewAnalyzer(c, source.NewCollection(entries, source.OriginResource))
	as.Equal(3.0, a.AverageYears())
	avg = a.MonthlyAverages()
	as.InDelta(4.0/3, avg[0], 1e-9)

	c.AverageSpan = false
	c.AverageYears = 0
	a = NewAnalyzer(c, source.NewCollection(entries, source.OriginResource))
	as.Equal([12]float64{}, a.MonthlyAverages())
}

func TestReportJSON(t *testing.T) {
	as := assert.New(t)
	a := newTestAnalyzer(atHours(0, 0, 5, 23))
	var sb strings.Builder
	if !as.NoError(PrintJSON(&sb, a.Report())) {
		return
	}
	var got map[string]any
	if as.NoError(json.Unmarshal([]byte(sb.String()), &got)) {
		as.EqualValues(4, got["total_accesses"])
		as.EqualValues(1, got["quietest_hour"])
		as.Equal("legacy", got["day_range"])
		as.Equal("resource", got["origin"])
	}
}

func TestPrintTable(t *testing.T) {
	as := assert.New(t)
	color.NoColor = true

	var entries []logentry.Entry
	for range 3 {
		entries = append(entries, logentry.New(2022, 3, 15, 14, 0))
	}
	entries = append(entries, logentry.New(2022, 7, 2, 15, 0))
	a := NewAnalyzer(DefaultConfig(), source.NewCollection(entries, source.OriginSynthetic))

	var sb strings.Builder
	if !as.NoError(a.Print(&sb)) {
		return
	}
	out := sb.String()
	as.Contains(out, "synthetic data")
	as.Contains(out, "Total accesses:           4\n")
	as.Contains(out, "Busiest hour:             14:00\n")
	as.Contains(out, "Quietest hour:            00:00\n")
	as.Contains(out, "Busiest two-hour period:  14:00-16:00\n")
	as.Contains(out, "Busiest day of month:     15th\n")
	as.Contains(out, "Quietest day of month:    1st\n")
	as.Contains(out, "Busiest month:            March\n")
	as.Contains(out, "Quietest month:           January\n")
	as.Contains(out, "Averages divided by:      5 years\n")
	as.Contains(out, strings.Repeat("#", barWidth))
}

func TestFlags(t *testing.T) {
	as := assert.New(t)
	var d DayRangeFlag
	as.NoError(d.Set("cal"))
	as.Equal(DayRangeCalendar, d)
	as.Error(d.Set("lunar"))

	var f FormatFlag
	as.NoError(f.Set("json"))
	as.Equal(FormatJSON, f)
	as.Error(f.Set("xml"))
	as.Equal([]FormatFlag{FormatJSON, FormatTable}, ListFormats())
}
