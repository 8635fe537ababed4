package decoder

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/transform"
)

// strategy is one (delimiter, encoding) pair tried against a delimited
// text file. The order mirrors what these bank exports show up as in
// the wild: legacy Windows codepages first, UTF-8 last.
type strategy struct {
	name  string
	comma rune
	enc   encodingSpec
}

var strategies = []strategy{
	{"comma/windows-1252", ',', encWindows1252},
	{"comma/cp1252", ',', encCP1252},
	{"comma/iso-8859-1", ',', encISO8859},
	{"semicolon/windows-1252", ';', encWindows1252},
	{"comma/utf-8-sig", ',', encUTF8BOM},
	{"comma/auto", ',', encAuto},
	{"comma/utf-8", ',', encUTF8},
}

// readDelimited tries each strategy in order and returns the grid of the
// first acceptable one: non-empty with at least three columns. Malformed
// physical lines inside an accepted attempt are skipped, not fatal.
func readDelimited(path string, headerRows int) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	onlyHeaders := false
	for _, s := range strategies {
		grid, parsed, err := tryStrategy(data, s, headerRows)
		if err != nil {
			continue
		}
		if acceptable(grid) {
			return grid, nil
		}
		if len(grid) == 0 && parsed > 0 {
			// The file decoded fine but holds nothing past its
			// header rows. That is an empty statement, not an
			// unreadable one.
			onlyHeaders = true
		}
	}
	if onlyHeaders {
		return nil, nil
	}
	return nil, fmt.Errorf("no delimited-text strategy matched %s", path)
}

func tryStrategy(data []byte, s strategy, headerRows int) ([][]string, int, error) {
	enc := s.enc.resolve(data)
	var r io.Reader = bytes.NewReader(data)
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}

	cr := csv.NewReader(r)
	cr.Comma = s.comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var grid [][]string
	line := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			// Bad physical line; skip it.
			continue
		}
		if err != nil {
			// Undecodable bytes or worse: the whole attempt fails.
			return nil, 0, err
		}
		line++
		if line <= headerRows {
			continue
		}
		grid = append(grid, record)
	}
	return grid, line, nil
}

// acceptable gates an attempt: it must have produced rows and at least
// three columns somewhere.
func acceptable(grid [][]string) bool {
	if len(grid) == 0 {
		return false
	}
	for _, row := range grid {
		if len(row) >= 3 {
			return true
		}
	}
	return false
}
