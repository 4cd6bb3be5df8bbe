package analyze

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/taoky/kizami/pkg/source"
)

const barWidth = 40

type Outputter interface {
	Print(w io.Writer, r Report) error
}

type OutputterFunc func(w io.Writer, r Report) error

func (f OutputterFunc) Print(w io.Writer, r Report) error {
	return f(w, r)
}

var outputters = map[FormatFlag]Outputter{
	FormatTable: OutputterFunc(PrintTable),
	FormatJSON:  OutputterFunc(PrintJSON),
}

func GetOutputter(name FormatFlag) (Outputter, error) {
	o, ok := outputters[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return o, nil
}

// Print writes the report of a in the configured format.
func (a *Analyzer) Print(w io.Writer) error {
	o, err := GetOutputter(a.Config.Format)
	if err != nil {
		return err
	}
	return o.Print(w, a.Report())
}

// NewTable returns a borderless, left-aligned table.
func NewTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(
		w,
		tablewriter.WithHeaderAutoWrap(tw.WrapNone),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		// Use two-space padding between columns.
		tablewriter.WithPadding(tw.Padding{
			Right:     "  ",
			Overwrite: true,
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
	)
}

func bar(count, peak int) string {
	if peak == 0 {
		return ""
	}
	return strings.Repeat("#", count*barWidth/peak)
}

func printHourly(w io.Writer, r Report) error {
	table := NewTable(w)
	table.Header("Hour", "Count", "Share", "")
	_, peak := firstMax(r.Hourly[:])
	for hour, count := range r.Hourly {
		share := 0.0
		if r.Total > 0 {
			share = float64(count) * 100 / float64(r.Total)
		}
		row := []string{
			strconv.Itoa(hour), humanize.Comma(int64(count)),
			strconv.FormatFloat(share, 'f', 1, 64) + "%", bar(count, peak),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func printMonthly(w io.Writer, r Report) error {
	table := NewTable(w)
	table.Header("Month", "Count", "Average")
	for i, count := range r.Monthly {
		row := []string{
			time.Month(i + 1).String(), humanize.Comma(int64(count)),
			strconv.FormatFloat(r.MonthlyAverages[i], 'f', 2, 64),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func dayString(day int) string {
	if day == 0 {
		return "none"
	}
	return humanize.Ordinal(day)
}

func PrintTable(w io.Writer, r Report) error {
	bold := color.New(color.Bold).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()

	if r.Origin == source.OriginSynthetic.String() {
		fmt.Fprintln(w, warn("Log file unavailable, statistics below use synthetic data."))
		fmt.Fprintln(w)
	}
	if err := printHourly(w, r); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := printMonthly(w, r); err != nil {
		return err
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Total accesses:           %s\n", bold(humanize.Comma(int64(r.Total))))
	fmt.Fprintf(w, "Busiest hour:             %s\n", bold(fmt.Sprintf("%02d:00", r.BusiestHour)))
	fmt.Fprintf(w, "Quietest hour:            %s\n", bold(fmt.Sprintf("%02d:00", r.QuietestHour)))
	fmt.Fprintf(w, "Busiest two-hour period:  %s\n",
		bold(fmt.Sprintf("%02d:00-%02d:00", r.BusiestTwoHourWindow, r.BusiestTwoHourWindow+2)))
	fmt.Fprintf(w, "Busiest day of month:     %s\n", bold(dayString(r.BusiestDay)))
	fmt.Fprintf(w, "Quietest day of month:    %s\n", bold(dayString(r.QuietestDay)))
	fmt.Fprintf(w, "Busiest month:            %s\n", bold(time.Month(r.BusiestMonth)))
	fmt.Fprintf(w, "Quietest month:           %s\n", bold(time.Month(r.QuietestMonth)))
	fmt.Fprintf(w, "Averages divided by:      %s years\n", bold(strconv.FormatFloat(r.AverageYears, 'g', -1, 64)))
	return nil
}

func PrintJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
