package synth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/taoky/kizami/pkg/logentry"
)

// Only days that exist in every month are generated.
const maxDay = 28

var ErrNoEntries = errors.New("number of entries must be positive")

type Generator struct {
	rand *rand.Rand
}

// New returns a generator seeded with seed. A zero seed picks a random one.
func New(seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{rand: rand.New(rand.NewPCG(seed, seed))}
}

// Entry returns an entry in year with uniformly random month (1-12),
// day (1-28), hour (0-23) and minute (0-59).
func (g *Generator) Entry(year int) logentry.Entry {
	month := 1 + g.rand.IntN(logentry.MonthsPerYear)
	day := 1 + g.rand.IntN(maxDay)
	hour := g.rand.IntN(logentry.HoursPerDay)
	minute := g.rand.IntN(60)
	return logentry.New(year, month, day, hour, minute)
}

func (g *Generator) Entries(year, n int) []logentry.Entry {
	entries := make([]logentry.Entry, 0, max(n, 0))
	for range n {
		entries = append(entries, g.Entry(year))
	}
	return entries
}

// Progress receives one Add(1) per written record.
type Progress interface {
	Add(num int) error
}

// WriteFile writes perYear random records for every year from fromYear to
// toYear inclusive, one record per line. Records of a year are not sorted.
func (g *Generator) WriteFile(w io.Writer, fromYear, toYear, perYear int, progress Progress) error {
	if perYear <= 0 {
		return ErrNoEntries
	}
	if fromYear > toYear {
		return fmt.Errorf("invalid year range %d-%d", fromYear, toYear)
	}
	bw := bufio.NewWriter(w)
	for year := fromYear; year <= toYear; year++ {
		for range perYear {
			if _, err := fmt.Fprintln(bw, g.Entry(year)); err != nil {
				return err
			}
			if progress != nil {
				if err := progress.Add(1); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}
