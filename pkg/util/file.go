package util

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Stdin is the file name that selects standard input in OpenFile.
const Stdin = "-"

type filteredReader struct {
	cmd *exec.Cmd
	src io.Closer
	r   io.ReadCloser
}

func (fr *filteredReader) Read(p []byte) (n int, err error) {
	return fr.r.Read(p)
}

func (fr *filteredReader) Close() error {
	return errors.Join(fr.r.Close(), fr.cmd.Wait(), fr.src.Close())
}

func filterByCommand(r io.ReadCloser, args []string) (io.ReadCloser, error) {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = r
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Join(err, r.Close())
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Join(err, r.Close())
	}
	return &filteredReader{cmd: cmd, src: r, r: stdout}, nil
}

type filterFunc func(r io.ReadCloser) (io.ReadCloser, error)

var fileTypes = map[string]filterFunc{
	".gz": func(r io.ReadCloser) (io.ReadCloser, error) {
		return filterByCommand(r, []string{"gzip", "-cd"})
	},
	".bz2": func(r io.ReadCloser) (io.ReadCloser, error) {
		return filterByCommand(r, []string{"bzip2", "-cd"})
	},
	".xz": func(r io.ReadCloser) (io.ReadCloser, error) {
		return filterByCommand(r, []string{"xz", "-cd", "-T", "0"})
	},
	".zst": func(r io.ReadCloser) (io.ReadCloser, error) {
		return filterByCommand(r, []string{"zstd", "-cd", "-T0"})
	},
}

// IsCompressed reports whether OpenFile would pipe filename through a
// decompressor.
func IsCompressed(filename string) bool {
	_, ok := fileTypes[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// OpenFile opens filename for reading, decompressing it on the fly when the
// extension is a known compression suffix.
func OpenFile(filename string) (io.ReadCloser, error) {
	if filename == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if filter, ok := fileTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return filter(f)
	}
	return f, nil
}
