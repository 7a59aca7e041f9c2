// Implements a Surface writing SVG documents,
// on top of github.com/ajstarks/svgo.
package svgdoc

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"github.com/benoitkugler/svgchart/svgdraw"
	"github.com/benoitkugler/svgchart/svgpath"
)

var _ svgdraw.Surface = (*Document)(nil) // assert interface conformance

// FontFamily is used for every text element.
const FontFamily = "Arial,Helvetica,sans-serif"

// stickyWriter keeps the first write error and
// ignores the following writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return len(p), nil
	}
	n, err := s.w.Write(p)
	s.err = err
	return n, err
}

// Document writes the shapes as SVG elements, as soon as
// they are drawn. Done closes the root element.
type Document struct {
	canvas        *svg.SVG
	out           *stickyWriter
	width, height float64
	err           error
}

// New starts a document of the given size on `w`.
func New(w io.Writer, width, height float64) *Document {
	out := &stickyWriter{w: w}
	d := &Document{canvas: svg.New(out), out: out, width: width, height: height}
	d.canvas.Start(width, height)
	return d
}

type svglen float64

func (v svglen) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

func style(parts ...string) string {
	val, sep := "", ""
	for _, part := range parts {
		if part != "" {
			val += sep + part
			sep = ";"
		}
	}
	return val
}

func paint(prop, color string) string {
	if _, ok, _ := svgdraw.ParseColor(color); !ok {
		return prop + ":none"
	}
	return prop + ":" + color
}

func (d *Document) check(st svgdraw.Style) {
	if err := svgdraw.CheckStyle(st); err != nil && d.err == nil {
		d.err = err
	}
}

// shapeStyle returns the CSS style of `st`, and records
// the first invalid color.
func (d *Document) shapeStyle(st svgdraw.Style) string {
	d.check(st)
	parts := []string{paint("fill", st.Fill)}
	if !st.HasStroke() {
		return style(append(parts, "stroke:none")...)
	}
	parts = append(parts, paint("stroke", st.Stroke),
		fmt.Sprintf("stroke-width:%v", svglen(st.StrokeWidth)))
	if len(st.Dash) != 0 {
		dashes := make([]string, len(st.Dash))
		for i, v := range st.Dash {
			dashes[i] = svglen(v).String()
		}
		parts = append(parts, "stroke-dasharray:"+strings.Join(dashes, ","))
	}
	if st.Join != svgdraw.Miter {
		parts = append(parts, "stroke-linejoin:"+st.Join.String())
	}
	if st.Cap != svgdraw.ButtCap {
		parts = append(parts, "stroke-linecap:"+st.Cap.String())
	}
	return style(parts...)
}

func (d *Document) Size() (float64, float64) { return d.width, d.height }

func (d *Document) Rect(x, y, w, h, radius float64, st svgdraw.Style) {
	if radius > 0 {
		d.canvas.Roundrect(x, y, w, h, radius, radius, d.shapeStyle(st))
		return
	}
	d.canvas.Rect(x, y, w, h, d.shapeStyle(st))
}

// Path writes the description `p`. Since SVG has no
// Catmull-Rom command, descriptions using it are converted
// to cubic Bézier curves.
func (d *Document) Path(p string, st svgdraw.Style) {
	if strings.ContainsAny(p, "Rr") {
		path, err := svgpath.Parse(p)
		if err != nil {
			if d.err == nil {
				d.err = fmt.Errorf("invalid path %q: %w", p, err)
			}
			return
		}
		p = path.ToSVGPath()
	}
	d.canvas.Path(p, d.shapeStyle(st))
}

func (d *Document) Circle(cx, cy, r float64, st svgdraw.Style) {
	d.canvas.Circle(cx, cy, r, d.shapeStyle(st))
}

// Text is centered on (x, y), both horizontally and vertically.
func (d *Document) Text(x, y float64, text string, st svgdraw.Style) {
	if st.Fill == "" {
		st.Fill = "#000"
	}
	d.check(st)
	d.canvas.Text(x, y, text, style(
		paint("fill", st.Fill),
		"font-family:"+FontFamily,
		fmt.Sprintf("font-size:%vpx", svglen(st.FontSizeOrDefault())),
		"text-anchor:middle",
		"dominant-baseline:central",
	))
}

// Done closes the document, and returns the first invalid style
// or write error.
func (d *Document) Done() error {
	d.canvas.End()
	if d.err != nil {
		return d.err
	}
	return d.out.err
}
