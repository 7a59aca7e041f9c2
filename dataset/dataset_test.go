package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/benoitkugler/svgchart/chart"
	"github.com/xuri/excelize/v2"
)

var expected = Dataset{
	Names: []string{"temp", "load"},
	Series: []chart.Series{
		{{X: 0, Y: 1.5}, {X: 1, Y: 2.5}, {X: 2, Y: 3}},
		{{X: 0, Y: 10}, {X: 2, Y: 12}},
	},
}

const csvData = `# measures
time,temp,load
0,1.5,10
1,2.5,
2,3,12
`

const jsonData = `{"series": [
	{"name": "temp", "points": [[0, 1.5], [1, 2.5], [2, 3]]},
	{"name": "load", "points": [[0, 10], [2, 12]]}
]}`

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeXLSX(t *testing.T) string {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	for cell, value := range map[string]interface{}{
		"A1": "time", "B1": "temp", "C1": "load",
		"A2": 0, "B2": 1.5, "C2": 10,
		"A3": 1, "B3": 2.5,
		"A4": 2, "B4": 3, "C4": 12,
	} {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestFormats(t *testing.T) {
	for _, path := range []string{
		writeFile(t, "data.csv", csvData),
		writeFile(t, "data.tsv", strings.ReplaceAll(csvData, ",", "\t")),
		writeFile(t, "data.json", jsonData),
		writeXLSX(t),
	} {
		ds, err := Load(path, Options{})
		if err != nil {
			t.Errorf("%s: %s", filepath.Base(path), err)
			continue
		}
		if !reflect.DeepEqual(ds, expected) {
			t.Errorf("%s: expected %v, got %v", filepath.Base(path), expected, ds)
		}
	}
}

func TestJSONLayouts(t *testing.T) {
	ds, err := ReadJSON(strings.NewReader(`[[0, 1.5], [1, 2.5], [2, 3]]`), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Series) != 1 || !reflect.DeepEqual(ds.Series[0], expected.Series[0]) {
		t.Errorf("unexpected single series %v", ds)
	}

	ds, err = ReadJSON(strings.NewReader(`[[[0, 1.5], [1, 2.5], [2, 3]], [], [[0, 10], [2, 12]]]`), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ds.Series, expected.Series) || !reflect.DeepEqual(ds.Names, []string{"", ""}) {
		t.Errorf("unexpected series %v", ds)
	}
}

func TestNoHeader(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("0,1\n\n1, 4\n"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	exp := Dataset{Names: []string{""}, Series: []chart.Series{{{X: 0, Y: 1}, {X: 1, Y: 4}}}}
	if !reflect.DeepEqual(ds, exp) {
		t.Errorf("expected %v, got %v", exp, ds)
	}
}

func TestCharset(t *testing.T) {
	latin1 := "x,temp\xe9rature\n0,1\n"
	ds, err := ReadCSV(strings.NewReader(latin1), Options{Charset: "latin1"})
	if err != nil {
		t.Fatal(err)
	}
	if ds.Names[0] != "température" {
		t.Errorf("unexpected name %q", ds.Names[0])
	}

	if _, err := ReadCSV(strings.NewReader(latin1), Options{Charset: "klingon"}); err == nil {
		t.Error("expected an error for an unknown charset")
	}
}

func TestErrors(t *testing.T) {
	path := writeFile(t, "bad.csv", "x,y\n0,1\n1,abc\n")
	_, err := Load(path, Options{})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a ParseError, got %v", err)
	}
	if pe.File != path || pe.Line != 3 {
		t.Errorf("unexpected location %s:%d", pe.File, pe.Line)
	}

	for _, input := range []string{
		"x,a,b\n0,0,1\n1,1,nan\n2,2,2\n",
		"x,a\n0,1\n1,inf\n",
		"x,a\n0,1\n-Inf,2\n",
	} {
		_, err := ReadCSV(strings.NewReader(input), Options{})
		if !errors.As(err, &pe) || pe.Line != 3 {
			t.Errorf("%q: expected an error on line 3, got %v", input, err)
		}
	}

	_, err = ReadJSON(strings.NewReader("[\n[1, 2],\n[3, ]\n]"), Options{})
	if !errors.As(err, &pe) || pe.Line != 3 {
		t.Errorf("expected an error on line 3, got %v", err)
	}

	for _, input := range []string{"x,y\n", "", "# only comments\n"} {
		if _, err := ReadCSV(strings.NewReader(input), Options{}); !errors.Is(err, ErrNoSeries) {
			t.Errorf("%q: expected ErrNoSeries, got %v", input, err)
		}
	}
	for _, input := range []string{"[]", `{"series": []}`, " "} {
		if _, err := ReadJSON(strings.NewReader(input), Options{}); !errors.Is(err, ErrNoSeries) {
			t.Errorf("%q: expected ErrNoSeries, got %v", input, err)
		}
	}

	if _, err := Load("data.parquet", Options{}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.csv"), Options{}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a missing file, got %v", err)
	}

	if _, err := Load(writeXLSX(t), Options{Sheet: "Missing"}); err == nil {
		t.Error("expected an error for a missing sheet")
	}
}
