package logentry

import (
	"cmp"
	"fmt"
	"time"
)

const (
	MonthsPerYear = 12
	HoursPerDay   = 24
	MaxDayOfMonth = 31
)

// Entry is a single access timestamp. Fields are stored as read from the log
// and are not range checked.
type Entry struct {
	year   int
	month  int
	day    int
	hour   int
	minute int
}

func New(year, month, day, hour, minute int) Entry {
	return Entry{
		year:   year,
		month:  month,
		day:    day,
		hour:   hour,
		minute: minute,
	}
}

func (e Entry) Year() int   { return e.year }
func (e Entry) Month() int  { return e.month }
func (e Entry) Day() int    { return e.day }
func (e Entry) Hour() int   { return e.hour }
func (e Entry) Minute() int { return e.minute }

// Fields returns year, month, day, hour and minute in record order.
func (e Entry) Fields() [5]int {
	return [5]int{e.year, e.month, e.day, e.hour, e.minute}
}

// Compare orders entries chronologically by comparing
// (year, month, day, hour, minute) lexicographically.
func (e Entry) Compare(other Entry) int {
	return cmp.Or(
		cmp.Compare(e.year, other.year),
		cmp.Compare(e.month, other.month),
		cmp.Compare(e.day, other.day),
		cmp.Compare(e.hour, other.hour),
		cmp.Compare(e.minute, other.minute),
	)
}

func (e Entry) Before(other Entry) bool {
	return e.Compare(other) < 0
}

// String returns the record form of the entry, which Parse accepts.
func (e Entry) String() string {
	return fmt.Sprintf("%02d %02d %02d %02d %02d", e.year, e.month, e.day, e.hour, e.minute)
}

// Time converts the entry to a UTC time. Out-of-range fields are normalized
// the way time.Date does it.
func (e Entry) Time() time.Time {
	return time.Date(e.year, time.Month(e.month), e.day, e.hour, e.minute, 0, 0, time.UTC)
}

// DayExists reports whether the entry's day is a real day of its month.
func (e Entry) DayExists() bool {
	if e.month < 1 || e.month > MonthsPerYear || e.day < 1 {
		return false
	}
	return e.day <= DaysIn(e.year, e.month)
}

// DaysIn returns the number of days in the given month (1-12).
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
