package util

import (
	"errors"
	"strconv"

	"github.com/dustin/go-humanize"
)

// SizeFlag is a byte size accepting plain numbers and humanized values
// such as "64KiB" or "1M".
type SizeFlag uint64

func (s SizeFlag) String() string {
	return humanize.IBytes(uint64(s))
}

func (s *SizeFlag) Set(value string) error {
	// First try parsing as a plain number
	size, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		size, err = humanize.ParseBytes(value)
		if err != nil {
			return err
		}
	}
	if size == 0 {
		return errors.New("size must be positive")
	}
	*s = SizeFlag(size)
	return nil
}

func (s SizeFlag) Type() string {
	return "size"
}

func (s SizeFlag) Int() int {
	return int(s)
}
