package chart

import (
	"math"
)

// Geometry is the layout of the canvas, fixed at initialization.
type Geometry struct {
	Width, Height           float64
	Padding                 Padding
	InnerWidth, InnerHeight float64 // plot area
}

// NewGeometry computes the plot area of a canvas.
func NewGeometry(width, height float64, padding Padding) Geometry {
	return Geometry{
		Width:       width,
		Height:      height,
		Padding:     padding,
		InnerWidth:  width - (padding.Left + padding.Right),
		InnerHeight: height - (padding.Top + padding.Bottom),
	}
}

// Inside returns true if the pixel (x, y) lies in the plot
// area, bounds included, up to `tolerance` pixels.
func (g Geometry) Inside(x, y, tolerance float64) bool {
	return x >= g.Padding.Left-tolerance &&
		x <= g.Padding.Left+g.InnerWidth+tolerance &&
		y >= g.Padding.Top-tolerance &&
		y <= g.Padding.Top+g.InnerHeight+tolerance
}

// Scale is the number of pixels per data unit, for each axis.
type Scale struct {
	X, Y float64
}

// NewScale derives the scale fitting the extrema in the plot area.
// A zero divisor, or a non positive or non finite factor, returns
// a *DegenerateScaleError.
func NewScale(e Extrema, g Geometry, mode XScaleMode) (Scale, error) {
	xDiv := e.XMax
	if mode == XScaleFromRange {
		xDiv = e.XMax - e.XMin
	}
	var s Scale
	s.X = g.InnerWidth / xDiv
	s.Y = g.InnerHeight / math.Abs(e.YMax-e.YMin)
	if xDiv == 0 || !isPositive(s.X) {
		return s, &DegenerateScaleError{Axis: "x", Extrema: e}
	}
	if !isPositive(s.Y) {
		return s, &DegenerateScaleError{Axis: "y", Extrema: e}
	}
	return s, nil
}

func isPositive(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

// Transform maps the data point `p` to pixels, flipping the y axis
// so that increasing y moves up the canvas.
func Transform(p Point, s Scale, e Extrema, g Geometry, mode XScaleMode) (x, y float64) {
	dx := p.X
	if mode == XScaleFromRange {
		dx -= e.XMin
	}
	// explicit conversions prevent fused multiply-add
	x = g.Padding.Left + float64(dx*s.X)
	y = (g.Height - g.Padding.Bottom) - float64((p.Y-e.YMin)*s.Y)
	return x, y
}
