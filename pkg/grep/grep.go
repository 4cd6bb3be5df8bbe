package grep

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/pflag"
	"github.com/taoky/kizami/pkg/source"
)

type Grepper struct {
	f      *Filter
	source source.Config
	out    io.Writer
	logger *log.Logger
}

type GrepperConfig struct {
	f      *Filter
	Source source.Config
}

func DefaultConfig() GrepperConfig {
	c := GrepperConfig{
		f:      &Filter{},
		Source: source.DefaultConfig(),
	}
	// Printing made-up records would be misleading
	c.Source.Policy = source.PolicyStrict
	return c
}

func (c *GrepperConfig) InstallFlags(flags *pflag.FlagSet) {
	c.f.InstallFlags(flags)

	flags.StringSliceVarP(&c.Source.SearchPath, "search-path", "I", c.Source.SearchPath, "Directories to look up log files in")
	flags.VarP(&c.Source.Policy, "policy", "P", "Ingestion policy (see \"kizami list policies\")")
	flags.Var(&c.Source.MaxLineSize, "max-line", "Maximum length of a log line")
}

func New(c GrepperConfig, w io.Writer, logger *log.Logger) *Grepper {
	return &Grepper{
		f:      c.f,
		source: c.Source,
		out:    w,
		logger: logger,
	}
}

func (g *Grepper) IsEmpty() bool {
	return g.f.IsEmpty()
}

// GrepFile writes the matching records of filename in chronological order
// and returns how many were written.
func (g *Grepper) GrepFile(filename string) (int, error) {
	c := g.source
	c.Resource = filename
	entries, err := source.New(c, g.logger).Load()
	if err != nil {
		return 0, err
	}
	n := 0
	for e := range entries.All() {
		if err := g.f.Match(e); err != nil {
			continue
		}
		if _, err := fmt.Fprintln(g.out, e); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
