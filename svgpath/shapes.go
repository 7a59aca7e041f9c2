package svgpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an off-axis ellipse.
const maxDx float64 = math.Pi / 8

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// AddRect adds the rectangle with top left corner (x, y)
// and size w x h. A positive radius rounds the corners.
func (p *Path) AddRect(x, y, w, h, radius float64) {
	if radius > 0 {
		p.addRoundRect(x, y, x+w, y+h, radius, radius)
		return
	}
	p.Start(toFixedP(x, y))
	p.Line(toFixedP(x+w, y))
	p.Line(toFixedP(x+w, y+h))
	p.Line(toFixedP(x, y+h))
	p.Stop(true)
}

// addRoundRect adds a rectangle of the indicated size with rounded
// corners of radius rx in the x axis and ry in the y axis.
func (p *Path) addRoundRect(minX, minY, maxX, maxY, rx, ry float64) {
	w := maxX - minX
	if w < rx*2 {
		rx = w / 2
	}
	h := maxY - minY
	if h < ry*2 {
		ry = h / 2
	}
	p.Start(toFixedP(minX+rx, minY))
	p.Line(toFixedP(maxX-rx, minY))
	p.addArc([]float64{rx, ry, 0, 0, 1, maxX, minY + ry}, maxX-rx, minY+ry, maxX-rx, minY)
	p.Line(toFixedP(maxX, maxY-ry))
	p.addArc([]float64{rx, ry, 0, 0, 1, maxX - rx, maxY}, maxX-rx, maxY-ry, maxX, maxY-ry)
	p.Line(toFixedP(minX+rx, maxY))
	p.addArc([]float64{rx, ry, 0, 0, 1, minX, maxY - ry}, minX+rx, maxY-ry, minX+rx, maxY)
	p.Line(toFixedP(minX, minY+ry))
	p.addArc([]float64{rx, ry, 0, 0, 1, minX + rx, minY}, minX+rx, minY+ry, minX, minY+ry)
	p.Stop(true)
}

// AddEllipse adds a closed ellipse centered at (cx, cy), approximated
// by two half arcs of cubic beziers.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	p.Start(toFixedP(cx+rx, cy))
	p.addArc([]float64{rx, ry, 0, 0, 1, cx - rx, cy}, cx, cy, cx+rx, cy)
	p.addArc([]float64{rx, ry, 0, 0, 1, cx + rx, cy}, cx, cy, cx-rx, cy)
	p.Stop(true)
}

// AddCircle adds a closed circle of radius r centered at (cx, cy).
func (p *Path) AddCircle(cx, cy, r float64) {
	p.AddEllipse(cx, cy, r, r)
}

// addArc adds an arc to the adder p
func (p *Path) addArc(points []float64, cx, cy, px, py float64) (lx, ly float64) {
	rotX := points[2] * math.Pi / 180 // Convert degress to radians
	largeArc := points[3] != 0
	sweep := points[4] != 0
	startAngle := math.Atan2(py-cy, px-cx) - rotX
	endAngle := math.Atan2(points[6]-cy, points[5]-cx) - rotX
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	// Approximate ellipse using cubic bezeir splines
	etaStart := math.Atan2(math.Sin(startAngle)/points[1], math.Cos(startAngle)/points[0])
	etaEnd := math.Atan2(math.Sin(endAngle)/points[1], math.Cos(endAngle)/points[0])
	deltaEta := etaEnd - etaStart
	if arcBig != largeArc { // Go has no boolean XOR
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// This check might be needed if the center point of the elipse is
	// at the midpoint of the start and end lines.
	if deltaEta < 0 && sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !sweep {
		deltaEta -= math.Pi * 2
	}

	// Round up to determine number of cubic splines to approximate bezier curve
	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs) // span of each segment
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3 // Math is fun!
	lx, ly = px, py
	sinTheta, cosTheta := math.Sin(rotX), math.Cos(rotX)
	ldx, ldy := ellipsePrime(points[0], points[1], sinTheta, cosTheta, etaStart, cx, cy)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		var px, py float64
		if i == segs {
			px, py = points[5], points[6] // Just makes the end point exact; no roundoff error
		} else {
			px, py = ellipsePointAt(points[0], points[1], sinTheta, cosTheta, eta, cx, cy)
		}
		dx, dy := ellipsePrime(points[0], points[1], sinTheta, cosTheta, eta, cx, cy)
		p.CubeBezier(toFixedP(lx+alpha*ldx, ly+alpha*ldy),
			toFixedP(px-alpha*dx, py-alpha*dy), toFixedP(px, py))
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	return lx, ly
}

// ellipsePrime gives tangent vectors for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePrime(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// findEllipseCenter locates the center of the Ellipse if it exists. If it does not exist,
// the radius values will be increased minimally for a solution to be possible
// while preserving the ra to rb ratio.  ra and rb arguments are pointers that can be
// checked after the call to see if the values changed. This method uses coordinate transformations
// to reduce the problem to finding the center of a circle that includes the origin
// and an arbitrary point. The center of the circle is then transformed
// back to the original coordinates and returned.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// Move origin to start point
	nx, ny := endX-startX, endY-startY

	// Rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// Scale X dimension so that ra = rb
	nx *= *rb / *ra // Now the ellipse is a circle radius rb; therefore foci and center coincide

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// Requested ellipse does not exist; scale ra, rb to fit. Length of
		// span is greater than max width of ellipse, must scale *ra, *rb
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// Notice that if hr is zero, both answers are the same.
	if (sweep && smallArc) || (!sweep && !smallArc) {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	//Reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}

// BezierSegment is a cubic bezier segment in float coordinates:
// two control points followed by the end point.
type BezierSegment [6]float64

// CatmullRom converts the knots (x0, y0, x1, y1, ...) of a Catmull-Rom
// spline into cubic bezier segments, one per knot after the first.
// The first and last knots are duplicated as end conditions.
func CatmullRom(knots []float64) []BezierSegment {
	n := len(knots) / 2
	if n < 2 {
		return nil
	}
	pt := func(i int) (float64, float64) {
		if i < 0 {
			i = 0
		} else if i >= n {
			i = n - 1
		}
		return knots[2*i], knots[2*i+1]
	}
	out := make([]BezierSegment, 0, n-1)
	for i := 0; i < n-1; i++ {
		x0, y0 := pt(i - 1)
		x1, y1 := pt(i)
		x2, y2 := pt(i + 1)
		x3, y3 := pt(i + 2)
		out = append(out, BezierSegment{
			(-x0 + 6*x1 + x2) / 6,
			(-y0 + 6*y1 + y2) / 6,
			(x1 + 6*x2 - x3) / 6,
			(y1 + 6*y2 - y3) / 6,
			x2,
			y2,
		})
	}
	return out
}

// addCatmullRom adds the smooth curve through the given knots,
// the first one being the current point.
func (p *Path) addCatmullRom(knots []float64) {
	for _, seg := range CatmullRom(knots) {
		p.CubeBezier(toFixedP(seg[0], seg[1]), toFixedP(seg[2], seg[3]), toFixedP(seg[4], seg[5]))
	}
}
