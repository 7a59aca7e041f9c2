package chart

import (
	"fmt"

	"github.com/benoitkugler/svgchart/svgdraw"
	"github.com/sirupsen/logrus"
)

// Padding is the space between the canvas border and the plot area, in pixels.
type Padding struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Gridlines is the number of intervals between gridlines, per axis.
// X+1 vertical and Y+1 horizontal lines are drawn.
type Gridlines struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// XScaleMode selects the divisor of the x scale.
type XScaleMode uint8

const (
	// XScaleFromMax divides the plot width by xMax, which
	// only fits the data when xMin is 0 or close to it.
	// This is the historical behavior and the default.
	XScaleFromMax XScaleMode = iota
	// XScaleFromRange divides the plot width by xMax - xMin,
	// and shifts x by xMin.
	XScaleFromRange
)

func (m XScaleMode) String() string {
	switch m {
	case XScaleFromMax:
		return "max"
	case XScaleFromRange:
		return "range"
	default:
		return "<unknown XScaleMode>"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m XScaleMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *XScaleMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "max", "":
		*m = XScaleFromMax
	case "range":
		*m = XScaleFromRange
	default:
		return fmt.Errorf("invalid x scale mode %q (must be max or range)", text)
	}
	return nil
}

// Settings configures a chart. It must be set before calling New.
type Settings struct {
	// Canvas padding
	Padding Padding `json:"padding"`
	// Canvas dimensions. When both are zero, the surface size is used.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Number of gridlines
	Gridlines Gridlines `json:"gridlines"`
	// The length that the ticks extend past the plot
	TickLength float64 `json:"tickLength"`
	// Color of the plot bounding box
	BackgroundColor string `json:"backgroundColor"`
	// The order colors are used by Plot
	Colors []string `json:"colors"`
	// Draw data points on the curve
	DrawPoints bool `json:"drawPoints"`
	// Join data with a smooth (Catmull-Rom) curve or with individual lines
	SmoothCurve bool `json:"smoothCurve"`
	// Only draw the points inside the plot area (bounds included).
	// By default every point is drawn.
	ClipToPlot bool `json:"clipToPlot"`
	// Divisor of the x scale
	XScale XScaleMode `json:"xScale"`
	// Font size of the tick labels; 0 means svgdraw.DefaultFontSize
	FontSize float64 `json:"fontSize"`

	// Logger defaults to the logrus standard logger.
	Logger logrus.FieldLogger `json:"-"`
}

// DefaultSettings returns the settings used when
// nothing is customized.
func DefaultSettings() Settings {
	return Settings{
		Padding:         Padding{Top: 40, Right: 40, Bottom: 40, Left: 40},
		Width:           640,
		Height:          480,
		Gridlines:       Gridlines{X: 5, Y: 10},
		TickLength:      8,
		BackgroundColor: "#fafafa",
		Colors: []string{
			"#ee7951", // Red
			"#88bbc8", // Blue
			"#82d07a", // Green
			"#ba80c8",
		},
		DrawPoints:  true,
		SmoothCurve: true,
	}
}

// Validate checks the settings, returning a *SettingsError
// for the first invalid field.
func (s Settings) Validate() error {
	g := NewGeometry(s.Width, s.Height, s.Padding)
	if !(g.InnerWidth > 0) {
		return newSettingsError("width", "inner width must be positive, got %g", g.InnerWidth)
	}
	if !(g.InnerHeight > 0) {
		return newSettingsError("height", "inner height must be positive, got %g", g.InnerHeight)
	}
	if s.Gridlines.X < 1 || s.Gridlines.Y < 1 {
		return newSettingsError("gridlines", "at least one interval per axis is required, got %d x %d",
			s.Gridlines.X, s.Gridlines.Y)
	}
	if s.TickLength < 0 {
		return newSettingsError("tickLength", "must not be negative, got %g", s.TickLength)
	}
	if s.XScale > XScaleFromRange {
		return newSettingsError("xScale", "unknown mode %d", s.XScale)
	}
	if _, _, err := svgdraw.ParseColor(s.BackgroundColor); err != nil {
		return &SettingsError{Field: "backgroundColor", Err: err}
	}
	if len(s.Colors) == 0 {
		return newSettingsError("colors", "the palette is empty")
	}
	for i, c := range s.Colors {
		if _, ok, err := svgdraw.ParseColor(c); err != nil || !ok {
			if err == nil {
				err = fmt.Errorf("color %d is not painted", i)
			}
			return &SettingsError{Field: "colors", Err: err}
		}
	}
	return nil
}
