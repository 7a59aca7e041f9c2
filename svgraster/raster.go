// Implements a raster backend to render charts,
// by wrapping rasterx. Images are encoded as PNG.
package svgraster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/benoitkugler/svgchart/svgdraw"
	"github.com/benoitkugler/svgchart/svgpath"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var _ svgpath.Adder = (*Renderer)(nil) // assert interface conformance

// Renderer rasterizes paths, filling and stroking them.
type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

func (rd *Renderer) Clear() {
	rd.dasher.Clear()
	rd.filler.Clear()
}

// the scanner is shared : the color must be set
// right before Fill or Stroke
func (rd *Renderer) SetFillColor(c svgdraw.PlainColor) {
	rd.filler.Scanner.SetColor(rasterx.ApplyOpacity(c, 1))
}

func (rd *Renderer) SetStrokeColor(c svgdraw.PlainColor) {
	rd.dasher.Scanner.SetColor(rasterx.ApplyOpacity(c, 1))
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgdraw.Round: rasterx.Round,
		svgdraw.Bevel: rasterx.Bevel,
		svgdraw.Miter: rasterx.Miter,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgdraw.ButtCap:   rasterx.ButtCap,
		svgdraw.SquareCap: rasterx.SquareCap,
		svgdraw.RoundCap:  rasterx.RoundCap,
	}
)

// SVG default
const miterLimit = 4

func (rd *Renderer) SetStrokeOptions(st svgdraw.Style) {
	rd.dasher.SetStroke(
		fixed.Int26_6(st.StrokeWidth*64), fixed.Int26_6(miterLimit*64),
		capToFunc[st.Cap], capToFunc[st.Cap], rasterx.FlatGap,
		joinToJoin[st.Join], st.Dash, 0,
	)
}

func (rd *Renderer) Start(a fixed.Point26_6) {
	rd.filler.Start(a)
	rd.dasher.Start(a)
}

func (rd *Renderer) Line(b fixed.Point26_6) {
	rd.filler.Line(b)
	rd.dasher.Line(b)
}

func (rd *Renderer) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	rd.filler.QuadBezier(b, c)
	rd.dasher.QuadBezier(b, c)
}

func (rd *Renderer) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	rd.filler.CubeBezier(b, c, d)
	rd.dasher.CubeBezier(b, c, d)
}

func (rd *Renderer) Stop(closeLoop bool) {
	rd.filler.Stop(closeLoop)
	rd.dasher.Stop(closeLoop)
}

func (rd *Renderer) Fill() {
	rd.filler.Draw()
}

func (rd *Renderer) Stroke() {
	rd.dasher.Draw()
}

var (
	regularOnce sync.Once
	regular     *truetype.Font
	regularErr  error
)

func regularFont() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = freetype.ParseFont(goregular.TTF)
	})
	return regular, regularErr
}

var _ svgdraw.Surface = (*Image)(nil) // assert interface conformance

// Image is a Surface painting in memory. Done encodes
// the image as PNG.
type Image struct {
	img      *image.RGBA
	renderer *Renderer
	out      io.Writer

	width, height float64
	faces         map[float64]font.Face // by size
	err           error
}

// New returns an image with transparent background, whose
// size is `width` x `height` rounded up.
func New(out io.Writer, width, height float64) *Image {
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Image{
		img:      img,
		renderer: NewRenderer(w, h, scanner),
		out:      out,
		width:    width,
		height:   height,
		faces:    make(map[float64]font.Face),
	}
}

// Image returns the image painted so far.
func (im *Image) Image() *image.RGBA { return im.img }

func (im *Image) setErr(err error) {
	if im.err == nil {
		im.err = err
	}
}

func (im *Image) Size() (float64, float64) { return im.width, im.height }

// draw fills, then strokes the path.
func (im *Image) draw(p svgpath.Path, st svgdraw.Style) {
	fill, hasFill, err := svgdraw.ParseColor(st.Fill)
	if err != nil {
		im.setErr(err)
		return
	}
	stroke, hasStroke, err := svgdraw.ParseColor(st.Stroke)
	if err != nil {
		im.setErr(err)
		return
	}
	hasStroke = hasStroke && st.StrokeWidth > 0

	rd := im.renderer
	rd.Clear()
	if hasStroke {
		rd.SetStrokeOptions(st)
	}
	p.AddTo(rd)
	if hasFill {
		rd.SetFillColor(fill)
		rd.Fill()
	}
	if hasStroke {
		rd.SetStrokeColor(stroke)
		rd.Stroke()
	}
}

func (im *Image) Rect(x, y, w, h, radius float64, st svgdraw.Style) {
	var p svgpath.Path
	p.AddRect(x, y, w, h, radius)
	im.draw(p, st)
}

// Path rasterizes the description `d`.
func (im *Image) Path(d string, st svgdraw.Style) {
	p, err := svgpath.Parse(d)
	if err != nil {
		im.setErr(fmt.Errorf("invalid path %q: %w", d, err))
		return
	}
	im.draw(p, st)
}

func (im *Image) Circle(cx, cy, r float64, st svgdraw.Style) {
	var p svgpath.Path
	p.AddCircle(cx, cy, r)
	im.draw(p, st)
}

func (im *Image) face(size float64) (font.Face, error) {
	if f, ok := im.faces[size]; ok {
		return f, nil
	}
	ft, err := regularFont()
	if err != nil {
		return nil, err
	}
	f := truetype.NewFace(ft, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone})
	im.faces[size] = f
	return f, nil
}

// ascent of the digits, relative to the font size,
// used to center text vertically
const middleShift = 0.35

// Text is centered on (x, y) and painted with the fill color.
func (im *Image) Text(x, y float64, text string, st svgdraw.Style) {
	fill, ok, err := svgdraw.ParseColor(st.Fill)
	if err != nil {
		im.setErr(err)
		return
	}
	if st.Fill == "" {
		fill, ok = svgdraw.NewPlainColor(0, 0, 0, 0xff), true
	}
	if !ok {
		return
	}
	size := st.FontSizeOrDefault()
	face, err := im.face(size)
	if err != nil {
		im.setErr(err)
		return
	}
	dr := &font.Drawer{Dst: im.img, Src: image.NewUniform(fill), Face: face}
	width := dr.MeasureString(text)
	dr.Dot = fixed.Point26_6{
		X: fixed.Int26_6(x*64) - width/2,
		Y: fixed.Int26_6((y + size*middleShift) * 64),
	}
	dr.DrawString(text)
}

// Done encodes the image, returning the first
// drawing or encoding error.
func (im *Image) Done() error {
	if im.err != nil {
		return im.err
	}
	return png.Encode(im.out, im.img)
}
