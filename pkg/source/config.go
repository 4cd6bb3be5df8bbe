package source

import (
	"errors"

	"github.com/spf13/pflag"
	"github.com/taoky/kizami/pkg/fileiter"
	"github.com/taoky/kizami/pkg/util"
)

const (
	DefaultResource = "weblog.txt"

	// RecordFormat describes the fields of a record, in order.
	RecordFormat = "Year Month(1-12) Day Hour Minute"
)

// PolicyFlag selects what happens when the log resource cannot be read.
type PolicyFlag string

const (
	// Any failure discards what was read and substitutes synthetic entries.
	PolicyFallback PolicyFlag = "fallback"
	// Malformed lines are skipped one by one. A missing resource still falls
	// back to synthetic entries.
	PolicySkip PolicyFlag = "skip"
	// Any failure is returned to the caller.
	PolicyStrict PolicyFlag = "strict"
)

type PolicyMeta struct {
	Policy      PolicyFlag
	Description string
}

var policies = []PolicyMeta{
	{PolicyFallback, "Use synthetic data if the log is missing or any line is malformed"},
	{PolicySkip, "Skip malformed lines; use synthetic data if the log is missing"},
	{PolicyStrict, "Fail if the log is missing or any line is malformed"},
}

func Policies() []PolicyMeta {
	return append([]PolicyMeta(nil), policies...)
}

func (p PolicyFlag) String() string {
	return string(p)
}

func (p *PolicyFlag) Set(value string) error {
	switch value {
	case "fallback", "substitute":
		*p = PolicyFallback
	case "skip":
		*p = PolicySkip
	case "strict", "fail":
		*p = PolicyStrict
	default:
		return errors.New(`must be one of "fallback", "skip" or "strict"`)
	}
	return nil
}

func (p PolicyFlag) Type() string {
	return "policy"
}

type Config struct {
	Resource   string
	SearchPath []string
	Policy     PolicyFlag

	SyntheticCount int
	SyntheticYear  int
	Seed           uint64

	MaxLineSize util.SizeFlag
}

func DefaultConfig() Config {
	return Config{
		Resource:       DefaultResource,
		SearchPath:     []string{"."},
		Policy:         PolicyFallback,
		SyntheticCount: 100,
		SyntheticYear:  2022,
		MaxLineSize:    util.SizeFlag(fileiter.DefaultBufferSize),
	}
}

func (c *Config) InstallFlags(flags *pflag.FlagSet) {
	flags.StringSliceVarP(&c.SearchPath, "search-path", "I", c.SearchPath, "Directories to look up the log file in")
	flags.VarP(&c.Policy, "policy", "P", "Ingestion policy (see \"kizami list policies\")")
	flags.IntVar(&c.SyntheticCount, "synthetic-count", c.SyntheticCount, "Number of synthetic entries used as fallback")
	flags.IntVar(&c.SyntheticYear, "synthetic-year", c.SyntheticYear, "Year of synthetic entries")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "Seed for synthetic entries (0 for random)")
	flags.Var(&c.MaxLineSize, "max-line", "Maximum length of a log line")
}
