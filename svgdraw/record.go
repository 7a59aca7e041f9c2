package svgdraw

var _ Surface = (*Recorder)(nil) // assert interface conformance

// Kind identifies a recorded draw operation.
type Kind uint8

const (
	KindRect Kind = iota
	KindPath
	KindCircle
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindPath:
		return "path"
	case KindCircle:
		return "circle"
	case KindText:
		return "text"
	default:
		return "<unknown Kind>"
	}
}

// Op is one recorded draw operation.
// Only the fields relevant for its Kind are set.
type Op struct {
	Kind       Kind
	X, Y, W, H float64
	R          float64 // radius of circles and rounded rects
	D          string
	Text       string
	Style      Style
}

// Recorder is an in-memory Surface, storing
// the draw operations in order.
type Recorder struct {
	Ops []Op

	width, height float64
	err           error
}

// NewRecorder returns an empty recorder for a canvas of the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) record(op Op) {
	if r.err == nil {
		r.err = CheckStyle(op.Style)
	}
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) Size() (float64, float64) { return r.width, r.height }

func (r *Recorder) Rect(x, y, w, h, radius float64, st Style) {
	r.record(Op{Kind: KindRect, X: x, Y: y, W: w, H: h, R: radius, Style: st})
}

func (r *Recorder) Path(d string, st Style) {
	r.record(Op{Kind: KindPath, D: d, Style: st})
}

func (r *Recorder) Circle(cx, cy, radius float64, st Style) {
	r.record(Op{Kind: KindCircle, X: cx, Y: cy, R: radius, Style: st})
}

func (r *Recorder) Text(x, y float64, text string, st Style) {
	r.record(Op{Kind: KindText, X: x, Y: y, Text: text, Style: st})
}

func (r *Recorder) Done() error { return r.err }

// Filter returns the recorded operations of the given kind.
func (r *Recorder) Filter(kind Kind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
