package fileiter

import (
	"bufio"
	"io"
)

const DefaultBufferSize = 1024 * 1024

// Iterator yields lines without their line ending. Next returns a nil line at
// the end of input.
type Iterator interface {
	Next() ([]byte, error)
}

type scannerIterator struct {
	scanner *bufio.Scanner
}

// NewWithScanner reads lines of at most bufSz bytes from r. A non-positive
// bufSz selects DefaultBufferSize.
func NewWithScanner(r io.Reader, bufSz int) Iterator {
	if bufSz <= 0 {
		bufSz = DefaultBufferSize
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(bufSz, 64*1024)), bufSz)
	return &scannerIterator{scanner: scanner}
}

func (s *scannerIterator) Next() ([]byte, error) {
	if s.scanner.Scan() {
		return s.scanner.Bytes(), nil
	} else {
		return nil, s.scanner.Err()
	}
}

type sliceIterator struct {
	lines [][]byte
}

// NewWithLines iterates over lines already held in memory.
func NewWithLines(lines ...string) Iterator {
	it := &sliceIterator{lines: make([][]byte, len(lines))}
	for i, l := range lines {
		it.lines[i] = []byte(l)
	}
	return it
}

func (s *sliceIterator) Next() ([]byte, error) {
	if len(s.lines) == 0 {
		return nil, nil
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	if line == nil {
		line = []byte{}
	}
	return line, nil
}
