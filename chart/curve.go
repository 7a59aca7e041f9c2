package chart

import (
	"github.com/benoitkugler/svgchart/svgdraw"
	"github.com/benoitkugler/svgchart/svgpath"
)

const (
	curveWidth        = 2
	markerRadius      = 5
	markerInnerRadius = 2
	markerStrokeWidth = 2

	// tolerance of the inclusive bounds check, in pixels
	clipTolerance = 1e-9
)

// Curve is the pixel rendition of a series.
type Curve struct {
	// Path is the description joining the accepted points,
	// empty if none was accepted.
	Path string
	// Points are the accepted pixel positions, in series order.
	Points [][2]float64
}

// BuildCurve transforms each point of the series in order, keeps the
// ones `accept` returns true for (every point if `accept` is nil),
// and joins them with straight lines or, if `smooth` is true,
// with a Catmull-Rom curve.
func BuildCurve(series Series, transform func(Point) (x, y float64),
	accept func(x, y float64) bool, smooth bool) Curve {
	b := svgpath.NewBuilder(smooth)
	var out Curve
	for _, p := range series {
		x, y := transform(p)
		if accept != nil && !accept(x, y) {
			continue
		}
		b.Add(x, y)
		out.Points = append(out.Points, [2]float64{x, y})
	}
	out.Path = b.String()
	return out
}

// drawCurve paints the whole curve, then the markers on top of it.
func (c *Chart) drawCurve(curve Curve, color string) {
	if len(curve.Points) == 0 {
		return
	}
	c.surface.Path(curve.Path, svgdraw.Style{
		Stroke:      color,
		StrokeWidth: curveWidth,
	})
	if !c.settings.DrawPoints {
		return
	}
	bg := c.settings.BackgroundColor
	for _, pt := range curve.Points {
		c.surface.Circle(pt[0], pt[1], markerRadius, svgdraw.Style{
			Fill:        color,
			Stroke:      bg,
			StrokeWidth: markerStrokeWidth,
		})
		c.surface.Circle(pt[0], pt[1], markerInnerRadius, svgdraw.Style{
			Fill:   bg,
			Stroke: "none",
		})
	}
}
