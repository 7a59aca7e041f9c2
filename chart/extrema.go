package chart

// Point is one (x, y) data pair.
type Point struct {
	X, Y float64
}

// Series is an ordered sequence of points, plotted as one curve.
// The order of the points is the drawing order.
type Series []Point

// Extrema are the minimum and maximum x and y values of a series.
type Extrema struct {
	XMin, XMax float64
	YMin, YMax float64
}

// FindExtrema scans the series once, tracking each field independently.
func FindExtrema(series Series) (Extrema, error) {
	if len(series) == 0 {
		return Extrema{}, ErrEmptySeries
	}
	e := Extrema{
		XMin: series[0].X, XMax: series[0].X,
		YMin: series[0].Y, YMax: series[0].Y,
	}
	for _, p := range series[1:] {
		if p.X > e.XMax {
			e.XMax = p.X
		}
		if p.X < e.XMin {
			e.XMin = p.X
		}
		if p.Y > e.YMax {
			e.YMax = p.Y
		}
		if p.Y < e.YMin {
			e.YMin = p.Y
		}
	}
	return e, nil
}
