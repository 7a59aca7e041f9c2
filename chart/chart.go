// Package chart plots series of (x, y) values as line or scatter
// charts, with gridlines and tick labels, on any svgdraw.Surface.
//
// The scale of a chart is computed from the first plotted series and
// kept for the following ones, so that every series shares the same
// axes. It may be reset with ResetScale.
package chart

import (
	"fmt"

	"github.com/benoitkugler/svgchart/svgdraw"
	"github.com/sirupsen/logrus"
)

const (
	canvasFill   = "#fff"
	canvasStroke = "#000"
	plotStroke   = "#fff"
)

// Chart draws series on a surface.
// It is not safe for concurrent use.
type Chart struct {
	surface  svgdraw.Surface
	settings Settings
	geometry Geometry
	palette  *Palette
	log      logrus.FieldLogger

	// set by the first Plot
	scaled  bool
	extrema Extrema
	scale   Scale

	err error // sticky
}

// New validates the settings, then draws the background and the
// plot area on `surface`.
// If both settings.Width and settings.Height are zero,
// the size of the surface is used.
func New(surface svgdraw.Surface, settings Settings) (*Chart, error) {
	if settings.Width == 0 && settings.Height == 0 {
		settings.Width, settings.Height = surface.Size()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	settings.Colors = append([]string(nil), settings.Colors...)

	c := &Chart{
		surface:  surface,
		settings: settings,
		geometry: NewGeometry(settings.Width, settings.Height, settings.Padding),
		palette:  NewPalette(settings.Colors),
		log:      settings.Logger,
	}
	if c.log == nil {
		c.log = logrus.StandardLogger()
	}

	g := c.geometry
	// canvas
	surface.Rect(0, 0, g.Width, g.Height, 0, svgdraw.Style{
		Fill: canvasFill, Stroke: canvasStroke, StrokeWidth: 1,
	})
	// the area the plot will reside in
	surface.Rect(g.Padding.Left, g.Padding.Top, g.InnerWidth, g.InnerHeight, 0, svgdraw.Style{
		Fill: settings.BackgroundColor, Stroke: plotStroke, StrokeWidth: 1,
	})
	return c, nil
}

// Plot draws one series, using the next color of the palette.
// The first series plotted (after New or ResetScale) also sets the
// scale and draws the gridlines.
//
// Errors are sticky : once a call has failed, the following ones do
// nothing. Use Err to check them, so that calls may be chained :
//
//	err := c.Plot(a).Plot(b).Err()
func (c *Chart) Plot(series Series) *Chart {
	if c.err != nil {
		return c
	}
	if err := c.plot(series); err != nil {
		c.err = fmt.Errorf("plotting series: %w", err)
	}
	return c
}

func (c *Chart) plot(series Series) error {
	if !c.scaled {
		if err := c.setScale(series); err != nil {
			return err
		}
	}

	color := c.palette.Next()
	curve := BuildCurve(series, c.transform, c.acceptFunc(), c.settings.SmoothCurve)
	if dropped := len(series) - len(curve.Points); dropped > 0 {
		c.log.WithFields(logrus.Fields{
			"points":  len(series),
			"dropped": dropped,
		}).Warn("points outside of the plot area")
	}
	c.drawCurve(curve, color)
	return nil
}

func (c *Chart) setScale(series Series) error {
	e, err := FindExtrema(series)
	if err != nil {
		return err
	}
	s, err := NewScale(e, c.geometry, c.settings.XScale)
	if err != nil {
		return err
	}
	c.extrema, c.scale, c.scaled = e, s, true

	lines := Grid(e, c.geometry, c.settings.Gridlines, c.settings.TickLength)
	c.log.WithFields(logrus.Fields{
		"extrema": fmt.Sprintf("%+v", e),
		"scale":   fmt.Sprintf("%+v", s),
		"lines":   len(lines),
	}).Debug("scale computed")
	c.drawGrid(lines)
	return nil
}

func (c *Chart) transform(p Point) (float64, float64) {
	return Transform(p, c.scale, c.extrema, c.geometry, c.settings.XScale)
}

func (c *Chart) acceptFunc() func(x, y float64) bool {
	if !c.settings.ClipToPlot {
		return nil
	}
	return func(x, y float64) bool {
		return c.geometry.Inside(x, y, clipTolerance)
	}
}

// Transform maps the data point (x, y) to pixels.
// It returns false if the scale is not set yet.
func (c *Chart) Transform(x, y float64) (px, py float64, ok bool) {
	if !c.scaled {
		return 0, 0, false
	}
	px, py = c.transform(Point{X: x, Y: y})
	return px, py, true
}

// ResetScale forgets the current scale: the next series plotted
// will compute a new one and draw its own gridlines.
// A sticky error is also cleared.
func (c *Chart) ResetScale() {
	c.scaled = false
	c.extrema, c.scale = Extrema{}, Scale{}
	c.err = nil
}

// Err returns the first error met by Plot.
func (c *Chart) Err() error { return c.err }

// Done finishes the surface, returning the first plotting
// error, or the surface error.
func (c *Chart) Done() error {
	err := c.surface.Done()
	if c.err != nil {
		return c.err
	}
	return err
}

// Extrema returns the extrema the scale was computed from,
// and false if it is not set yet.
func (c *Chart) Extrema() (Extrema, bool) { return c.extrema, c.scaled }

// Scale returns the current scale, and false if it is not set yet.
func (c *Chart) Scale() (Scale, bool) { return c.scale, c.scaled }

// Geometry returns the layout of the canvas.
func (c *Chart) Geometry() Geometry { return c.geometry }

// Settings returns a copy of the settings in use.
func (c *Chart) Settings() Settings {
	out := c.settings
	out.Colors = append([]string(nil), out.Colors...)
	return out
}
