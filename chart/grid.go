package chart

import (
	"math"

	"github.com/benoitkugler/svgchart/svgdraw"
	"github.com/benoitkugler/svgchart/svgpath"
)

const (
	gridColor   = "#e5e5e5"
	labelColor  = "#000"
	xLabelShift = 10 // below the ticks
	yLabelShift = 15 // left of the ticks
)

var gridDash = []float64{8, 3}

// GridLine is one gridline with its tick label.
type GridLine struct {
	Vertical       bool // false for horizontal lines
	X1, Y1, X2, Y2 float64
	Label          string
	LabelX, LabelY float64
}

// Path returns the description of the line.
func (gl GridLine) Path() string {
	return svgpath.Segment(gl.X1, gl.Y1, gl.X2, gl.Y2)
}

// Grid places the gridlines of a plot area, with the labels of the
// data values they mark.
// Vertical lines come first, from left to right, with increasing
// labels. Horizontal lines follow, from top to bottom, with
// decreasing labels. Ticks extend the lines past the bottom and
// the left of the plot by `tick` pixels.
func Grid(e Extrema, g Geometry, lines Gridlines, tick float64) []GridLine {
	originX, originY := g.Padding.Left, g.Padding.Top+g.InnerHeight
	spacingX := g.InnerWidth / float64(lines.X)
	spacingY := g.InnerHeight / float64(lines.Y)

	bottom := originY + tick        // end of the vertical ticks
	left := originX - tick          // start of the horizontal ticks
	right := originX + g.InnerWidth // end of the horizontal lines

	diffX := math.Abs(e.XMax-e.XMin) / float64(lines.X)
	diffY := math.Abs(e.YMax-e.YMin) / float64(lines.Y)

	out := make([]GridLine, 0, lines.X+lines.Y+2)
	for i := 0; i <= lines.X; i++ {
		x := originX + float64(float64(i)*spacingX)
		out = append(out, GridLine{
			Vertical: true,
			X1:       x,
			Y1:       bottom,
			X2:       x,
			Y2:       g.Padding.Top,
			Label:    toFixed(e.XMin+float64(float64(i)*diffX), 2),
			LabelX:   x,
			LabelY:   bottom + xLabelShift,
		})
	}
	for j := 0; j <= lines.Y; j++ {
		y := g.Padding.Top + float64(float64(j)*spacingY)
		out = append(out, GridLine{
			X1:     left,
			Y1:     y,
			X2:     right,
			Y2:     y,
			Label:  toFixed(e.YMax-float64(float64(j)*diffY), 2),
			LabelX: left - yLabelShift,
			LabelY: y,
		})
	}
	return out
}

// drawGrid paints each line, then its label.
func (c *Chart) drawGrid(lines []GridLine) {
	for _, gl := range lines {
		st := svgdraw.Style{Stroke: gridColor, StrokeWidth: 1}
		if !gl.Vertical {
			st.Dash = gridDash
		}
		c.surface.Path(gl.Path(), st)
		c.surface.Text(gl.LabelX, gl.LabelY, gl.Label, svgdraw.Style{
			Fill:     labelColor,
			FontSize: c.settings.FontSize,
		})
	}
}
