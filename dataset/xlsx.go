package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads a sheet of an Excel workbook, which is
// the first one unless opts.Sheet is set.
// opts.Charset is ignored.
func ReadXLSX(r io.Reader, opts Options) (Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Dataset{}, err
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Dataset{}, ErrNoSeries
		}
		sheet = sheets[0]
	}
	cells, err := f.GetRows(sheet)
	if err != nil {
		return Dataset{}, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	rows := make([]row, len(cells))
	for i, c := range cells {
		rows[i] = row{line: i + 1, cells: c}
	}
	return fromRows(rows)
}
