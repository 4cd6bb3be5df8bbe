package grep

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/taoky/kizami/pkg/logentry"
)

func TestFilterMatch(t *testing.T) {
	e := logentry.New(2022, 6, 15, 12, 30)
	testCases := []struct {
		filter   Filter
		expected error
	}{
		{Filter{}, nil},
		{Filter{Years: []int{2021, 2022}}, nil},
		{Filter{Years: []int{2021}}, ErrYearNoMatch},
		{Filter{Months: []int{6}}, nil},
		{Filter{Months: []int{7}}, ErrMonthNoMatch},
		{Filter{Hours: []int{12, 13}}, nil},
		{Filter{Hours: []int{0}}, ErrHourNoMatch},
		{Filter{TimeFrom: time.Date(2022, 6, 15, 12, 30, 0, 0, time.UTC)}, nil},
		{Filter{TimeFrom: time.Date(2022, 6, 15, 12, 31, 0, 0, time.UTC)}, ErrTimeNoMatch},
		{Filter{TimeTo: time.Date(2022, 6, 15, 12, 30, 0, 0, time.UTC)}, nil},
		{Filter{TimeTo: time.Date(2022, 6, 15, 12, 29, 0, 0, time.UTC)}, ErrTimeNoMatch},
		// Bounds are compared by wall clock regardless of zone
		{Filter{TimeTo: time.Date(2022, 6, 15, 12, 29, 0, 0, time.FixedZone("", -8*60*60))}, ErrTimeNoMatch},
	}
	for i, c := range testCases {
		assert.Equal(t, c.expected, c.filter.Match(e), "case %d", i)
	}
}

func TestFilterFlags(t *testing.T) {
	as := assert.New(t)
	var f Filter
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.InstallFlags(flags)
	as.True(f.IsEmpty())
	err := flags.Parse([]string{"--year", "2021,2022", "--month", "3", "--time-from", "2022-01-01"})
	if as.NoError(err) {
		as.Equal([]int{2021, 2022}, f.Years)
		as.Equal([]int{3}, f.Months)
		as.Equal(time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), f.TimeFrom)
		as.False(f.IsEmpty())
	}
}

func TestGrepFile(t *testing.T) {
	as := assert.New(t)
	dir := t.TempDir()
	name := filepath.Join(dir, "weblog.txt")
	content := "2022 03 01 10 00\n2021 12 31 23 59\n2022 01 15 08 30\n"
	if !as.NoError(os.WriteFile(name, []byte(content), 0o644)) {
		return
	}

	c := DefaultConfig()
	c.f.Years = []int{2022}
	var out strings.Builder
	g := New(c, &out, nil)
	n, err := g.GrepFile(name)
	if as.NoError(err) {
		as.Equal(2, n)
		as.Equal("2022 01 15 08 30\n2022 03 01 10 00\n", out.String())
	}

	_, err = g.GrepFile(filepath.Join(dir, "missing.txt"))
	as.Error(err)
}
