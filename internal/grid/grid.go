// Package grid turns the flat span sequence into (x, char, y) triples.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/ir"
)

// Columns is the number of spans that make up one logical row.
const Columns = 3

// ErrMalformed is wrapped by every error Build returns.
var ErrMalformed = errors.New("malformed table")

type state int

const (
	awaitX state = iota
	awaitChar
	awaitY
)

func (s state) String() string {
	switch s {
	case awaitX:
		return "x"
	case awaitChar:
		return "character"
	case awaitY:
		return "y"
	}
	return "unknown"
}

// Build groups tokens into rows of three (x, char, y), discarding the first
// row as the header. Row and column come from the token index alone.
func Build(tokens []string) (*ir.Grid, error) {
	g := &ir.Grid{}
	if len(tokens) <= Columns {
		return g, nil
	}

	var cur ir.Triple
	st := awaitX
	for i := Columns; i < len(tokens); i++ {
		row := i / Columns
		tok := tokens[i]
		switch st {
		case awaitX:
			x, err := coordinate(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d %s: %v", ErrMalformed, row, st, err)
			}
			cur = ir.Triple{X: x}
			st = awaitChar
		case awaitChar:
			c, err := character(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d %s: %v", ErrMalformed, row, st, err)
			}
			cur.Char = c
			st = awaitY
		case awaitY:
			y, err := coordinate(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d %s: %v", ErrMalformed, row, st, err)
			}
			cur.Y = y
			g.Add(cur)
			st = awaitX
		}
	}
	if st != awaitX {
		return nil, fmt.Errorf("%w: row %d incomplete, missing %s", ErrMalformed, len(tokens)/Columns, st)
	}
	return g, nil
}

func coordinate(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("coordinate %q is not an integer", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("coordinate %d is negative", n)
	}
	if n > ir.MaxCoordinate {
		return 0, fmt.Errorf("coordinate %d exceeds %d", n, ir.MaxCoordinate)
	}
	return n, nil
}

// character accepts a single rune verbatim, so a cell holding one space is
// kept; anything longer is trimmed and must then be one rune.
func character(s string) (string, error) {
	if utf8.RuneCountInString(s) == 1 {
		return s, nil
	}
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) != 1 {
		return "", fmt.Errorf("character cell %q is not a single character", s)
	}
	return t, nil
}
