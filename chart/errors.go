package chart

import (
	"errors"
	"fmt"
)

// ErrEmptySeries indicates the extrema of a series without points were requested.
var ErrEmptySeries = errors.New("empty series")

// DegenerateScaleError is returned when the extrema of the first
// plotted series do not define a finite, positive scale :
// xMax is zero (or the x range is empty), or yMax equals yMin.
type DegenerateScaleError struct {
	Axis    string // "x" or "y"
	Extrema Extrema
}

func (e *DegenerateScaleError) Error() string {
	switch e.Axis {
	case "x":
		return fmt.Sprintf("degenerate x scale (x in [%g, %g])", e.Extrema.XMin, e.Extrema.XMax)
	default:
		return fmt.Sprintf("degenerate y scale (y in [%g, %g])", e.Extrema.YMin, e.Extrema.YMax)
	}
}

// SettingsError represents an invalid configuration value.
type SettingsError struct {
	Field string
	Err   error
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("invalid settings %s: %v", e.Field, e.Err)
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

func newSettingsError(field string, format string, args ...interface{}) *SettingsError {
	return &SettingsError{Field: field, Err: fmt.Errorf(format, args...)}
}
