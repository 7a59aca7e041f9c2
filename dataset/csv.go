package dataset

import (
	"encoding/csv"
	"errors"
	"io"
)

// ReadCSV reads comma separated values.
// Lines starting with # are ignored.
func ReadCSV(r io.Reader, opts Options) (Dataset, error) {
	return readDelimited(r, ',', opts)
}

// ReadTSV reads tab separated values.
func ReadTSV(r io.Reader, opts Options) (Dataset, error) {
	return readDelimited(r, '\t', opts)
}

func readDelimited(r io.Reader, comma rune, opts Options) (Dataset, error) {
	r, err := opts.decode(r)
	if err != nil {
		return Dataset{}, err
	}
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.Comment = '#'
	cr.FieldsPerRecord = -1

	var rows []row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return Dataset{}, &ParseError{Line: pe.Line, Err: pe.Err}
			}
			return Dataset{}, err
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, row{line: line, cells: rec})
	}
	return fromRows(rows)
}
