// Package dataset loads chart series from CSV, JSON
// or XLSX files.
//
// Tabular inputs (CSV and XLSX) store one point per row :
// the first column is x, and each following column
// is the y value of one series. An optional first row
// holds the series names. Empty cells are skipped.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgchart/chart"
	"golang.org/x/net/html/charset"
)

var (
	// ErrNoSeries is returned when an input holds no point.
	ErrNoSeries = errors.New("no series found")

	// ErrUnknownFormat is returned by Load for an unsupported file extension.
	ErrUnknownFormat = errors.New("unknown dataset format")
)

// ParseError locates an invalid value.
type ParseError struct {
	File string // may be empty
	Line int    // 1-based, 0 if unknown
	Err  error
}

func (e *ParseError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", file, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", file, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Dataset is a list of named series.
type Dataset struct {
	Names  []string // same length as Series, names may be empty
	Series []chart.Series
}

// Options tweaks the decoding of the inputs.
type Options struct {
	// Charset is the label of the text encoding of CSV
	// and JSON inputs, such as "latin1" or "utf-16".
	// Empty means UTF-8.
	Charset string
	// Sheet is the XLSX sheet to read; empty means the first one.
	Sheet string
}

func (opts Options) decode(r io.Reader) (io.Reader, error) {
	if opts.Charset == "" {
		return r, nil
	}
	out, err := charset.NewReaderLabel(opts.Charset, r)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", opts.Charset, err)
	}
	return out, nil
}

// Load reads the file at `path`, choosing the format from its extension :
// .csv, .tsv, .txt, .json, .xlsx or .xlsm.
func Load(path string, opts Options) (Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var read func(io.Reader, Options) (Dataset, error)
	switch ext {
	case ".csv", ".txt":
		read = ReadCSV
	case ".tsv":
		read = ReadTSV
	case ".json":
		read = ReadJSON
	case ".xlsx", ".xlsm":
		read = ReadXLSX
	default:
		return Dataset{}, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, err
	}
	defer f.Close()

	ds, err := read(f, opts)
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.File = path
	} else if err != nil {
		err = fmt.Errorf("%s: %w", path, err)
	}
	return ds, err
}

// row is one line of a table
type row struct {
	line  int
	cells []string
}

// parseNumber accepts finite values only.
func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid number %q: not finite", strings.TrimSpace(s))
	}
	return f, nil
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// fromRows builds the series of a table, with an optional header.
func fromRows(rows []row) (Dataset, error) {
	var (
		names  []string
		series []chart.Series
		first  = true
	)
	for _, r := range rows {
		if isEmptyRow(r.cells) {
			continue
		}
		if first {
			first = false
			if _, err := parseNumber(r.cells[0]); err != nil { // header
				for _, c := range r.cells[1:] {
					names = append(names, strings.TrimSpace(c))
				}
				continue
			}
		}
		if strings.TrimSpace(r.cells[0]) == "" {
			continue
		}
		x, err := parseNumber(r.cells[0])
		if err != nil {
			return Dataset{}, &ParseError{Line: r.line, Err: err}
		}
		for i, c := range r.cells[1:] {
			if strings.TrimSpace(c) == "" {
				continue
			}
			y, err := parseNumber(c)
			if err != nil {
				return Dataset{}, &ParseError{Line: r.line, Err: err}
			}
			for len(series) <= i {
				series = append(series, nil)
			}
			series[i] = append(series[i], chart.Point{X: x, Y: y})
		}
	}
	for len(names) < len(series) {
		names = append(names, "")
	}
	return newDataset(names, series)
}

// newDataset removes the empty series
func newDataset(names []string, series []chart.Series) (Dataset, error) {
	var out Dataset
	for i, s := range series {
		if len(s) == 0 {
			continue
		}
		out.Names = append(out.Names, names[i])
		out.Series = append(out.Series, s)
	}
	if len(out.Series) == 0 {
		return Dataset{}, ErrNoSeries
	}
	return out, nil
}
