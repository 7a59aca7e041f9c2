package svgpath

import (
	"math"
	"strconv"
	"strings"
)

// Builder accumulates a path description, one point at a time.
// The first point starts the path; the following ones are joined
// either by straight lines or, when smooth is set, as knots of a
// Catmull-Rom curve.
//
// The output follows the historical format of the description strings :
// "M x y" then "Lx y" for each line, or "M x y R" then " x y" for each knot.
type Builder struct {
	sb     strings.Builder
	smooth bool
	n      int
}

// NewBuilder returns an empty description.
func NewBuilder(smooth bool) *Builder {
	return &Builder{smooth: smooth}
}

// Add appends the point (x, y), in pixels.
func (b *Builder) Add(x, y float64) {
	switch {
	case b.n == 0:
		b.sb.WriteString("M ")
		b.sb.WriteString(FormatNumber(x))
		b.sb.WriteByte(' ')
		b.sb.WriteString(FormatNumber(y))
		if b.smooth {
			b.sb.WriteString(" R")
		}
	case b.smooth:
		b.sb.WriteByte(' ')
		b.sb.WriteString(FormatNumber(x))
		b.sb.WriteByte(' ')
		b.sb.WriteString(FormatNumber(y))
	default:
		b.sb.WriteByte('L')
		b.sb.WriteString(FormatNumber(x))
		b.sb.WriteByte(' ')
		b.sb.WriteString(FormatNumber(y))
	}
	b.n++
}

// Len returns the number of points added.
func (b *Builder) Len() int { return b.n }

// String returns the description; it is empty if no point was added.
func (b *Builder) String() string { return b.sb.String() }

// Segment returns the description of the straight line
// from (x1, y1) to (x2, y2).
func Segment(x1, y1, x2, y2 float64) string {
	return "M" + FormatNumber(x1) + " " + FormatNumber(y1) +
		"L" + FormatNumber(x2) + " " + FormatNumber(y2)
}

// FormatNumber writes `v` with the shortest representation
// reading back to the same float, using a plain decimal notation
// for 1e-6 <= |v| < 1e21 and an exponent otherwise,
// such as "40", "12.5", "1e-7" or "1.5e+21".
func FormatNumber(v float64) string {
	switch {
	case v == 0:
		return "0" // also for negative zero
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if abs := math.Abs(v); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp := s, ""
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mant, exp = s[:i], s[i+1:]
	}
	sign := exp[0]
	exp = strings.TrimLeft(exp[1:], "0")
	return mant + "e" + string(sign) + exp
}
