// Implements a PDF backend to render charts,
// by wrapping github.com/jung-kurt/gofpdf.
// One pixel is mapped to one point.
package svgpdf

import (
	"fmt"
	"io"

	"github.com/benoitkugler/svgchart/svgdraw"
	"github.com/benoitkugler/svgchart/svgpath"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

var (
	_ svgpath.Adder   = pather{}
	_ svgdraw.Surface = (*Document)(nil)
)

// FontFamily is one of the standard PDF fonts,
// used for every text.
const FontFamily = "Helvetica"

// implements the path commands
type pather struct {
	pdf *gofpdf.Fpdf
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.CurveTo(cx, cy, x, y)
}

func (p pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

// Document is a one page PDF document.
type Document struct {
	pdf           *gofpdf.Fpdf
	out           io.Writer
	width, height float64

	inked    fixed.Rectangle26_6 // union of the painted paths
	hasInked bool

	err error
}

// New starts a document whose page has the given size.
// The document is written to `out` by Done.
func New(out io.Writer, width, height float64) *Document {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont(FontFamily, "", svgdraw.DefaultFontSize)
	return &Document{pdf: pdf, out: out, width: width, height: height}
}

func (d *Document) setErr(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *Document) Size() (float64, float64) { return d.width, d.height }

// Inked returns the bounding box of the paths drawn so far,
// or false if nothing has been painted.
func (d *Document) Inked() (fixed.Rectangle26_6, bool) { return d.inked, d.hasInked }

// draw fills then strokes the path
func (d *Document) draw(p svgpath.Path, st svgdraw.Style) {
	fill, hasFill, err := svgdraw.ParseColor(st.Fill)
	if err != nil {
		d.setErr(err)
		return
	}
	stroke, hasStroke, err := svgdraw.ParseColor(st.Stroke)
	if err != nil {
		d.setErr(err)
		return
	}
	hasStroke = hasStroke && st.StrokeWidth > 0

	var styleStr string
	switch {
	case hasFill && hasStroke:
		styleStr = "FD"
	case hasFill:
		styleStr = "F"
	case hasStroke:
		styleStr = "D"
	default:
		return
	}
	if hasFill {
		d.pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
	}
	if hasStroke {
		d.pdf.SetDrawColor(int(stroke.R), int(stroke.G), int(stroke.B))
		d.pdf.SetLineWidth(st.StrokeWidth)
		d.pdf.SetLineJoinStyle(st.Join.String())
		d.pdf.SetLineCapStyle(st.Cap.String())
		dash := st.Dash
		if dash == nil {
			dash = []float64{}
		}
		d.pdf.SetDashPattern(dash, 0)
	}
	p.AddTo(pather{pdf: d.pdf})
	d.pdf.DrawPath(styleStr)

	if len(p) == 0 {
		return
	}
	if b := p.Bounds(); d.hasInked {
		d.inked = d.inked.Union(b)
	} else {
		d.inked, d.hasInked = b, true
	}
}

func (d *Document) Rect(x, y, w, h, radius float64, st svgdraw.Style) {
	var p svgpath.Path
	p.AddRect(x, y, w, h, radius)
	d.draw(p, st)
}

func (d *Document) Path(desc string, st svgdraw.Style) {
	p, err := svgpath.Parse(desc)
	if err != nil {
		d.setErr(fmt.Errorf("invalid path %q: %w", desc, err))
		return
	}
	d.draw(p, st)
}

func (d *Document) Circle(cx, cy, r float64, st svgdraw.Style) {
	var p svgpath.Path
	p.AddCircle(cx, cy, r)
	d.draw(p, st)
}

// ascent of the digits, relative to the font size
const middleShift = 0.35

// Text is centered on (x, y).
func (d *Document) Text(x, y float64, text string, st svgdraw.Style) {
	c, ok, err := svgdraw.ParseColor(st.Fill)
	if err != nil {
		d.setErr(err)
		return
	}
	if st.Fill == "" {
		c, ok = svgdraw.NewPlainColor(0, 0, 0, 0xff), true
	}
	if !ok {
		return
	}
	size := st.FontSizeOrDefault()
	d.pdf.SetFontSize(size)
	d.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	w := d.pdf.GetStringWidth(text)
	d.pdf.Text(x-w/2, y+size*middleShift, text)
}

// Done writes the document, returning the first error.
func (d *Document) Done() error {
	if d.err != nil {
		return d.err
	}
	return d.pdf.Output(d.out)
}
