package svgpath

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	errParamMismatch = errors.New("param mismatch")
	errNoMoveTo      = errors.New("path data must start with a move to")

	// ErrUnknownCommand is returned for path commands outside of
	// M, L, H, V, C, S, Q, T, A, R and Z (in both cases).
	ErrUnknownCommand = errors.New("unknown path command")
)

// pathCursor is used to parse path data strings
type pathCursor struct {
	path             Path
	points           []float64
	placeX, placeY   float64 // current point
	startX, startY   float64 // start of the current subpath
	cntlPtX, cntlPtY float64 // last control point, for smooth curves
	lastKey          byte
	inPath           bool
}

const commands = "MmLlHhVvCcSsQqTtAaRrZz"

// Parse compiles the path data `d` into a Path.
// Besides the SVG commands, the Catmull-Rom command R is supported :
// "M x0 y0 R x1 y1 x2 y2 ..." draws a smooth curve through all the points.
func Parse(d string) (Path, error) {
	var c pathCursor
	if err := c.compilePath(d); err != nil {
		return nil, err
	}
	return c.path, nil
}

// compilePath splits the data in segments, starting with
// a command letter, and adds them to the path.
func (c *pathCursor) compilePath(svgPath string) error {
	svgPath = strings.TrimSpace(svgPath)
	if svgPath == "" {
		return nil
	}
	if !strings.ContainsRune(commands, rune(svgPath[0])) {
		return errNoMoveTo
	}
	lastIndex := 0
	for i := 1; i < len(svgPath); i++ {
		r := svgPath[i]
		if !isLetter(r) || r == 'e' || r == 'E' {
			continue
		}
		if !strings.ContainsRune(commands, rune(r)) {
			return ErrUnknownCommand
		}
		if err := c.addSeg(svgPath[lastIndex:i]); err != nil {
			return err
		}
		lastIndex = i
	}
	return c.addSeg(svgPath[lastIndex:])
}

func isLetter(r byte) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// getPoints reads the numbers of `dataPoints` into c.points.
// Numbers may be separated by spaces, commas, a sign or a second decimal point.
func (c *pathCursor) getPoints(dataPoints string) error {
	c.points = c.points[:0]
	start := -1
	hasDot, hasExp := false, false
	flush := func(end int) error {
		if start < 0 {
			return nil
		}
		f, err := strconv.ParseFloat(dataPoints[start:end], 64)
		if err != nil {
			return err
		}
		c.points = append(c.points, f)
		start = -1
		return nil
	}
	for i := 0; i < len(dataPoints); i++ {
		r := dataPoints[i]
		switch {
		case r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r':
			if err := flush(i); err != nil {
				return err
			}
		case r == '-' || r == '+':
			if start >= 0 && (dataPoints[i-1] == 'e' || dataPoints[i-1] == 'E') {
				continue
			}
			if err := flush(i); err != nil {
				return err
			}
			start, hasDot, hasExp = i, false, false
		case r == '.':
			if start >= 0 && (hasDot || hasExp) {
				if err := flush(i); err != nil {
					return err
				}
			}
			if start < 0 {
				start, hasExp = i, false
			}
			hasDot = true
		case r == 'e' || r == 'E':
			if start < 0 {
				return errParamMismatch
			}
			hasExp = true
		case '0' <= r && r <= '9':
			if start < 0 {
				start, hasDot, hasExp = i, false, false
			}
		default:
			return errParamMismatch
		}
	}
	return flush(len(dataPoints))
}

func (c *pathCursor) reflectControl(ifKeys string) (float64, float64) {
	if strings.IndexByte(ifKeys, c.lastKey) >= 0 {
		return 2*c.placeX - c.cntlPtX, 2*c.placeY - c.cntlPtY
	}
	return c.placeX, c.placeY
}

// addSeg decodes one path command and its parameters.
func (c *pathCursor) addSeg(segString string) error {
	if err := c.getPoints(segString[1:]); err != nil {
		return err
	}
	l := len(c.points)
	k := segString[0]
	rel := k >= 'a' && k <= 'z'
	upper := k &^ 0x20 // upper case
	if upper != 'M' && upper != 'Z' && !c.inPath {
		return errNoMoveTo
	}
	offX, offY := 0., 0.
	if rel {
		offX, offY = c.placeX, c.placeY
	}
	switch upper {
	case 'Z':
		if l != 0 {
			return errParamMismatch
		}
		if c.inPath {
			c.path.Stop(true)
			c.placeX, c.placeY = c.startX, c.startY
			c.inPath = false
		}
	case 'M':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		c.placeX, c.placeY = c.points[0]+offX, c.points[1]+offY
		c.startX, c.startY = c.placeX, c.placeY
		c.path.Start(toFixedP(c.placeX, c.placeY))
		c.inPath = true
		for i := 2; i < l; i += 2 { // implicit line to
			if rel {
				offX, offY = c.placeX, c.placeY
			}
			c.placeX, c.placeY = c.points[i]+offX, c.points[i+1]+offY
			c.path.Line(toFixedP(c.placeX, c.placeY))
		}
	case 'L':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 2 {
			if rel {
				offX, offY = c.placeX, c.placeY
			}
			c.placeX, c.placeY = c.points[i]+offX, c.points[i+1]+offY
			c.path.Line(toFixedP(c.placeX, c.placeY))
		}
	case 'H':
		if l == 0 {
			return errParamMismatch
		}
		for _, x := range c.points {
			if rel {
				x += c.placeX
			}
			c.placeX = x
			c.path.Line(toFixedP(c.placeX, c.placeY))
		}
	case 'V':
		if l == 0 {
			return errParamMismatch
		}
		for _, y := range c.points {
			if rel {
				y += c.placeY
			}
			c.placeY = y
			c.path.Line(toFixedP(c.placeX, c.placeY))
		}
	case 'C':
		if l == 0 || l%6 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 6 {
			if rel {
				offX, offY = c.placeX, c.placeY
			}
			c.cntlPtX, c.cntlPtY = c.points[i+2]+offX, c.points[i+3]+offY
			b := toFixedP(c.points[i]+offX, c.points[i+1]+offY)
			c.placeX, c.placeY = c.points[i+4]+offX, c.points[i+5]+offY
			c.path.CubeBezier(b, toFixedP(c.cntlPtX, c.cntlPtY), toFixedP(c.placeX, c.placeY))
		}
	case 'S':
		if l == 0 || l%4 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 4 {
			if rel {
				offX, offY = c.placeX, c.placeY
			}
			bx, by := c.reflectControl("CcSs")
			c.cntlPtX, c.cntlPtY = c.points[i]+offX, c.points[i+1]+offY
			c.placeX, c.placeY = c.points[i+2]+offX, c.points[i+3]+offY
			c.path.CubeBezier(toFixedP(bx, by), toFixedP(c.cntlPtX, c.cntlPtY), toFixedP(c.placeX, c.placeY))
			c.lastKey = k
		}
	case 'Q':
		if l == 0 || l%4 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 4 {
			if rel {
				offX, offY = c.placeX, c.placeY
			}
			c.cntlPtX, c.cntlPtY = c.points[i]+offX, c.points[i+1]+offY
			c.placeX, c.placeY = c.points[i+2]+offX, c.points[i+3]+offY
			c.path.QuadBezier(toFixedP(c.cntlPtX, c.cntlPtY), toFixedP(c.placeX, c.placeY))
		}
	case 'T':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 2 {
			if rel {
				offX, offY = c.placeX, c.placeY
			}
			c.cntlPtX, c.cntlPtY = c.reflectControl("QqTt")
			c.placeX, c.placeY = c.points[i]+offX, c.points[i+1]+offY
			c.path.QuadBezier(toFixedP(c.cntlPtX, c.cntlPtY), toFixedP(c.placeX, c.placeY))
			c.lastKey = k
		}
	case 'A':
		if l == 0 || l%7 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 7 {
			if rel {
				offX, offY = c.placeX, c.placeY
			}
			arc := append([]float64(nil), c.points[i:i+7]...)
			arc[5] += offX
			arc[6] += offY
			if arc[0] == 0 || arc[1] == 0 { // degenerate arcs are lines
				c.placeX, c.placeY = arc[5], arc[6]
				c.path.Line(toFixedP(c.placeX, c.placeY))
				continue
			}
			arc[0], arc[1] = math.Abs(arc[0]), math.Abs(arc[1])
			cx, cy := findEllipseCenter(&arc[0], &arc[1], arc[2]*math.Pi/180, c.placeX, c.placeY,
				arc[5], arc[6], arc[4] == 0, arc[3] == 0)
			c.placeX, c.placeY = c.path.addArc(arc, cx, cy, c.placeX, c.placeY)
		}
	case 'R':
		if l%2 != 0 {
			return errParamMismatch
		}
		knots := make([]float64, 0, l+2)
		knots = append(knots, c.placeX, c.placeY)
		for i := 0; i < l; i += 2 {
			knots = append(knots, c.points[i]+offX, c.points[i+1]+offY)
		}
		c.path.addCatmullRom(knots)
		if l > 0 {
			c.placeX, c.placeY = knots[len(knots)-2], knots[len(knots)-1]
		}
	default:
		return ErrUnknownCommand
	}
	if upper != 'S' && upper != 'T' {
		c.lastKey = k
	}
	return nil
}
