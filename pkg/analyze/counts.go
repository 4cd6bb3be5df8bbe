package analyze

import (
	"iter"
	"math"

	"github.com/taoky/kizami/pkg/logentry"
)

// legacyQuietDays is the day range scanned by QuietestDay in DayRangeLegacy:
// the days present in every month.
const legacyQuietDays = 28

// HourlyCounts holds the number of accesses for each hour of the day.
type HourlyCounts [logentry.HoursPerDay]int

func (h HourlyCounts) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}

// Busiest returns the first hour with the highest count, or 0 if there are
// no accesses.
func (h HourlyCounts) Busiest() int {
	idx, _ := firstMax(h[:])
	return idx
}

// Quietest returns the first hour with the lowest count.
func (h HourlyCounts) Quietest() int {
	return firstMin(h[:])
}

// BusiestTwoHourWindow returns the hour h (0-22) maximizing the accesses in
// hours h and h+1.
func (h HourlyCounts) BusiestTwoHourWindow() int {
	var windows [logentry.HoursPerDay - 1]int
	for i := range windows {
		windows[i] = h[i] + h[i+1]
	}
	idx, _ := firstMax(windows[:])
	return idx
}

// firstMax scans counts in order and keeps an index only when its value is
// strictly greater than every value before it, starting from a baseline of 0.
// It returns (0, 0) when no count is positive.
func firstMax(counts []int) (idx, value int) {
	for i, c := range counts {
		if c > value {
			idx, value = i, c
		}
	}
	return idx, value
}

// firstMin returns the first index holding the minimum of counts, or 0 for
// an empty slice.
func firstMin(counts []int) int {
	idx, value := 0, math.MaxInt
	for i, c := range counts {
		if c < value {
			idx, value = i, c
		}
	}
	return idx
}

func hourlyCounts(entries iter.Seq[logentry.Entry]) HourlyCounts {
	var h HourlyCounts
	for e := range entries {
		if hour := e.Hour(); hour >= 0 && hour < len(h) {
			h[hour]++
		}
	}
	return h
}

// dayCounts counts entries by day of month for days 1..days. Index 0 is
// day 1. With calendar set, entries on days their month does not have are
// ignored.
func dayCounts(entries iter.Seq[logentry.Entry], days int, calendar bool) []int {
	counts := make([]int, days)
	for e := range entries {
		day := e.Day()
		if day < 1 || day > days {
			continue
		}
		if calendar && !e.DayExists() {
			continue
		}
		counts[day-1]++
	}
	return counts
}

func monthCounts(entries iter.Seq[logentry.Entry]) [logentry.MonthsPerYear]int {
	var m [logentry.MonthsPerYear]int
	for e := range entries {
		if month := e.Month(); month >= 1 && month <= len(m) {
			m[month-1]++
		}
	}
	return m
}
