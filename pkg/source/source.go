package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/taoky/kizami/pkg/fileiter"
	"github.com/taoky/kizami/pkg/logentry"
	"github.com/taoky/kizami/pkg/parser"
	"github.com/taoky/kizami/pkg/synth"
	"github.com/taoky/kizami/pkg/util"
)

var ErrResourceUnavailable = errors.New("resource unavailable")

// Resolve locates name. A name that exists as given (or "-" for standard
// input) is returned unchanged, otherwise each directory of searchPath is
// tried in order.
func Resolve(name string, searchPath []string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrResourceUnavailable)
	}
	if name == util.Stdin {
		return name, nil
	}
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	if !filepath.IsAbs(name) {
		for _, dir := range searchPath {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s not found", ErrResourceUnavailable, name)
}

type Source struct {
	Config Config

	parser parser.Parser
	logger *log.Logger
}

// New creates a source reading records with the default parser. Warnings
// about fallbacks and skipped lines go to logger, which may be nil.
func New(c Config, logger *log.Logger) *Source {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if c.Policy == "" {
		c.Policy = PolicyFallback
	}
	return &Source{
		Config: c,
		parser: parser.Default,
		logger: logger,
	}
}

// Load reads the configured resource and returns its entries sorted.
// Failures are handled according to the configured policy.
func (s *Source) Load() (*Collection, error) {
	path, err := Resolve(s.Config.Resource, s.Config.SearchPath)
	if err != nil {
		return s.fallback(err)
	}
	entries, err := s.readFile(path)
	if err != nil {
		return s.fallback(err)
	}
	return NewCollection(entries, OriginResource), nil
}

func (s *Source) readFile(path string) ([]logentry.Entry, error) {
	f, err := util.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	entries, err := s.ReadEntries(fileiter.NewWithScanner(f, s.Config.MaxLineSize.Int()))
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("%w: %s: %w", ErrResourceUnavailable, path, closeErr)
	}
	return entries, err
}

// ReadEntries parses every line of iter. Blank lines are ignored. With
// PolicySkip a malformed line is logged and skipped, otherwise the first
// malformed line stops reading and its error is returned.
func (s *Source) ReadEntries(iter fileiter.Iterator) ([]logentry.Entry, error) {
	var entries []logentry.Entry
	for lineno := 1; ; lineno++ {
		line, err := iter.Next()
		if err != nil {
			return entries, fmt.Errorf("%w: line %d: %w", ErrResourceUnavailable, lineno, err)
		}
		if line == nil {
			break
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		entry, err := s.parser.Parse(line)
		if err != nil {
			if s.Config.Policy == PolicySkip {
				s.logger.Printf("skipping line %d: %v", lineno, err)
				continue
			}
			return entries, fmt.Errorf("line %d: %w", lineno, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Source) fallback(cause error) (*Collection, error) {
	if s.Config.Policy == PolicyStrict {
		return nil, fmt.Errorf("failed to read %s: %w", s.Config.Resource, cause)
	}
	s.logger.Printf("failed to read %s: %v", s.Config.Resource, cause)
	s.logger.Printf("using %d synthetic entries for %d instead", s.Config.SyntheticCount, s.Config.SyntheticYear)
	g := synth.New(s.Config.Seed)
	return NewCollection(g.Entries(s.Config.SyntheticYear, s.Config.SyntheticCount), OriginSynthetic), nil
}
