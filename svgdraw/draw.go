// Defines how a chart is drawn on screen.
// This requires a driver implementing the actual draw operations,
// such as an SVG document writer, a rasterizer to output .png images
// or a pdf writer.
// See for example svgchart/svgdoc, svgchart/svgraster or svgchart/svgpdf .
package svgdraw

// Surface knows how to do the actual draw operations
// but doesn't need any chart knowledge.
// Shapes are painted in call order : a shape hides the
// shapes drawn before it.
type Surface interface {
	// Size returns the dimensions of the canvas, in pixels.
	Size() (width, height float64)

	// Rect draws the rectangle with top left corner (x, y),
	// optionnaly rounded with `radius`.
	Rect(x, y, w, h, radius float64, st Style)

	// Path draws the path description `d`, which is SVG path data,
	// extended with the Catmull-Rom command R.
	Path(d string, st Style)

	// Circle draws the circle of center (cx, cy).
	Circle(cx, cy, r float64, st Style)

	// Text draws `text` centered on (x, y).
	Text(x, y float64, text string, st Style)

	// Done finishes the drawing and returns the first error
	// encountered, if any.
	Done() error
}

// Style holds the painting attributes of a shape.
// Colors are CSS colors; an empty string or "none"
// disable filling or stroking.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Dash        []float64 // values for the dash pattern (nil or an empty slice for no dashes)
	FontSize    float64   // only used for text
	Join        JoinMode
	Cap         CapMode
}

// DefaultFontSize is used for text when Style.FontSize is zero.
const DefaultFontSize = 10

// FontSizeOrDefault returns the font size to use for text.
func (st Style) FontSizeOrDefault() float64 {
	if st.FontSize <= 0 {
		return DefaultFontSize
	}
	return st.FontSize
}

// HasStroke returns true if the style strokes its shape.
func (st Style) HasStroke() bool {
	return !isNone(st.Stroke) && st.StrokeWidth > 0
}

// HasFill returns true if the style fills its shape.
func (st Style) HasFill() bool {
	return !isNone(st.Fill)
}

// JoinMode type to specify how segments join.
type JoinMode uint8

// JoinMode constants determine how stroke segments bridge the gap at a join
const (
	Miter JoinMode = iota // SVG default
	Round
	Bevel
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "round"
	case Bevel:
		return "bevel"
	case Miter:
		return "miter"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota // SVG default
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "butt"
	case SquareCap:
		return "square"
	case RoundCap:
		return "round"
	default:
		return "<unknown CapMode>"
	}
}
