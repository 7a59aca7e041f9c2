package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/benoitkugler/svgchart/chart"
)

type jsonSeries struct {
	Name   string       `json:"name"`
	Points [][2]float64 `json:"points"`
}

type jsonDataset struct {
	Series []jsonSeries `json:"series"`
}

func toSeries(points [][2]float64) chart.Series {
	out := make(chart.Series, len(points))
	for i, p := range points {
		out[i] = chart.Point{X: p[0], Y: p[1]}
	}
	return out
}

// ReadJSON accepts three layouts :
//
//	[[x, y], ...]                                  one series
//	[[[x, y], ...], ...]                           several series
//	{"series": [{"name": "a", "points": [[x, y], ...]}, ...]}
func ReadJSON(r io.Reader, opts Options) (Dataset, error) {
	r, err := opts.decode(r)
	if err != nil {
		return Dataset{}, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Dataset{}, ErrNoSeries
	}

	var (
		names  []string
		series []chart.Series
	)
	switch data[0] {
	case '{':
		var ds jsonDataset
		if err := json.Unmarshal(data, &ds); err != nil {
			return Dataset{}, jsonError(data, err)
		}
		for _, s := range ds.Series {
			names = append(names, s.Name)
			series = append(series, toSeries(s.Points))
		}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return Dataset{}, jsonError(data, err)
		}
		if len(items) == 0 {
			return Dataset{}, ErrNoSeries
		}
		if isPair(items[0]) {
			var points [][2]float64
			if err := json.Unmarshal(data, &points); err != nil {
				return Dataset{}, jsonError(data, err)
			}
			names, series = []string{""}, []chart.Series{toSeries(points)}
			break
		}
		var all [][][2]float64
		if err := json.Unmarshal(data, &all); err != nil {
			return Dataset{}, jsonError(data, err)
		}
		for _, points := range all {
			names = append(names, "")
			series = append(series, toSeries(points))
		}
	default:
		return Dataset{}, &ParseError{Line: 1, Err: fmt.Errorf("unexpected character %q", data[0])}
	}
	return newDataset(names, series)
}

// isPair returns true for [number, number]
func isPair(item json.RawMessage) bool {
	var pair []float64
	return json.Unmarshal(item, &pair) == nil && len(pair) == 2
}

// jsonError adds the line of the error, if known
func jsonError(data []byte, err error) error {
	var (
		syntax *json.SyntaxError
		typ    *json.UnmarshalTypeError
		offset int64
	)
	switch {
	case errors.As(err, &syntax):
		offset = syntax.Offset
	case errors.As(err, &typ):
		offset = typ.Offset
	default:
		return &ParseError{Err: err}
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return &ParseError{Line: 1 + bytes.Count(data[:offset], []byte{'\n'}), Err: err}
}
