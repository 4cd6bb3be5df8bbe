package analyze

import (
	"fmt"
	"io"
	"log"
	"os"
)

// NewLogger returns the logger for warnings, writing to w unless
// LogOutput names a file to append to.
func (c *AnalyzerConfig) NewLogger(w io.Writer) (*log.Logger, error) {
	logger := log.New(w, "", log.LstdFlags)
	if c.LogOutput == "" {
		return logger, nil
	}
	f, err := os.OpenFile(c.LogOutput, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file error: %w", err)
	}
	logger.SetOutput(f)
	return logger, nil
}
