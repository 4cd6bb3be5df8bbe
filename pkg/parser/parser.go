package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/taoky/kizami/pkg/logentry"
)

// NumFields is the number of integer fields in a record:
// year, month, day, hour and minute.
const NumFields = 5

var ErrMalformedRecord = errors.New("malformed record")

type Parser interface {
	Parse(line []byte) (logentry.Entry, error)
}

type ParserFunc func(line []byte) (logentry.Entry, error)

func (f ParserFunc) Parse(line []byte) (logentry.Entry, error) {
	return f(line)
}

// Default parses the whitespace separated integer record format.
var Default Parser = ParserFunc(Parse)

// ParseFields splits line into whitespace separated tokens and reads the first
// NumFields of them as base-10 integers. Extra tokens are ignored.
//
// Values are not range checked: a month of 13 or an hour of 30 is returned
// as is.
func ParseFields(line []byte) ([NumFields]int, error) {
	var values [NumFields]int
	tokens := bytes.Fields(line)
	if len(tokens) < NumFields {
		return values, fmt.Errorf("%w: expected %d fields, got %d\ngot line: %q",
			ErrMalformedRecord, NumFields, len(tokens), line)
	}
	for i := range values {
		v, err := strconv.Atoi(string(tokens[i]))
		if err != nil {
			return values, fmt.Errorf("%w: field %d: %w\ngot line: %q", ErrMalformedRecord, i+1, err, line)
		}
		values[i] = v
	}
	return values, nil
}

func Parse(line []byte) (logentry.Entry, error) {
	v, err := ParseFields(line)
	if err != nil {
		return logentry.Entry{}, err
	}
	return logentry.New(v[0], v[1], v[2], v[3], v[4]), nil
}
