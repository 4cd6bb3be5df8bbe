package analyze

import (
	"errors"
	"slices"
)

// DayRangeFlag selects which days BusiestDay and QuietestDay consider.
type DayRangeFlag string

const (
	// BusiestDay scans days 1-31 and QuietestDay days 1-28.
	DayRangeLegacy DayRangeFlag = "legacy"
	// Both scan days 1-31, ignoring entries on days their month lacks.
	DayRangeCalendar DayRangeFlag = "calendar"
)

func (d DayRangeFlag) String() string {
	return string(d)
}

func (d *DayRangeFlag) Set(value string) error {
	switch value {
	case "legacy":
		*d = DayRangeLegacy
	case "calendar", "cal":
		*d = DayRangeCalendar
	default:
		return errors.New(`must be one of "legacy" or "calendar"`)
	}
	return nil
}

func (d DayRangeFlag) Type() string {
	return "string"
}

type FormatFlag string

const (
	FormatTable FormatFlag = "table"
	FormatJSON  FormatFlag = "json"
)

func (f FormatFlag) String() string {
	return string(f)
}

func (f *FormatFlag) Set(value string) error {
	if _, ok := outputters[FormatFlag(value)]; !ok {
		return errors.New(`must be one of "table" or "json"`)
	}
	*f = FormatFlag(value)
	return nil
}

func (f FormatFlag) Type() string {
	return "string"
}

func ListFormats() []FormatFlag {
	ret := make([]FormatFlag, 0, len(outputters))
	for key := range outputters {
		ret = append(ret, key)
	}
	slices.Sort(ret)
	return ret
}
