package grep

import (
	"errors"
	"slices"
	"time"

	"github.com/spf13/pflag"
	"github.com/taoky/kizami/pkg/logentry"
)

type Filter struct {
	Years    []int
	Months   []int
	Hours    []int
	TimeFrom time.Time
	TimeTo   time.Time
}

var timeFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
	"200601021504",
}

func (f *Filter) InstallFlags(flags *pflag.FlagSet) {
	flags.IntSliceVar(&f.Years, "year", f.Years, "Year to keep (can be specified multiple times)")
	flags.IntSliceVar(&f.Months, "month", f.Months, "Month (1-12) to keep (can be specified multiple times)")
	flags.IntSliceVar(&f.Hours, "hour", f.Hours, "Hour (0-23) to keep (can be specified multiple times)")
	flags.TimeVar(&f.TimeFrom, "time-from", f.TimeFrom, timeFormats, "Start time to filter (inclusive)")
	flags.TimeVar(&f.TimeTo, "time-to", f.TimeTo, timeFormats, "End time to filter (inclusive)")
}

func (f *Filter) IsEmpty() bool {
	return len(f.Years) == 0 && len(f.Months) == 0 && len(f.Hours) == 0 &&
		f.TimeFrom.IsZero() && f.TimeTo.IsZero()
}

var (
	ErrYearNoMatch  = errors.New("year does not match")
	ErrMonthNoMatch = errors.New("month does not match")
	ErrHourNoMatch  = errors.New("hour does not match")
	ErrTimeNoMatch  = errors.New("time does not match")
)

// Match returns nil if e passes every configured condition. Entry fields
// carry no zone, so time bounds are compared by their wall clock.
func (f *Filter) Match(e logentry.Entry) error {
	if len(f.Years) > 0 && !slices.Contains(f.Years, e.Year()) {
		return ErrYearNoMatch
	}
	if len(f.Months) > 0 && !slices.Contains(f.Months, e.Month()) {
		return ErrMonthNoMatch
	}
	if len(f.Hours) > 0 && !slices.Contains(f.Hours, e.Hour()) {
		return ErrHourNoMatch
	}
	if !f.TimeFrom.IsZero() || !f.TimeTo.IsZero() {
		t := e.Time()
		if !f.TimeFrom.IsZero() && t.Before(wallClock(f.TimeFrom)) {
			return ErrTimeNoMatch
		}
		if !f.TimeTo.IsZero() && t.After(wallClock(f.TimeTo)) {
			return ErrTimeNoMatch
		}
	}
	return nil
}

// Keep adapts Match for source.Collection.Filter.
func (f *Filter) Keep(e logentry.Entry) bool {
	return f.Match(e) == nil
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}
