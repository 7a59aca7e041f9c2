package svgdoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/benoitkugler/svgchart/chart"
	"github.com/benoitkugler/svgchart/svgdraw"
	"github.com/sirupsen/logrus"
)

func elements(t *testing.T, doc []byte) map[string][]xml.StartElement {
	out := map[string][]xml.StartElement{}
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("invalid document: %s", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			out[se.Name.Local] = append(out[se.Name.Local], se)
		}
	}
}

func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func TestChart(t *testing.T) {
	var buf bytes.Buffer
	settings := chart.DefaultSettings()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	settings.Logger = logger

	c, err := chart.New(New(&buf, 640, 480), settings)
	if err != nil {
		t.Fatal(err)
	}
	a := chart.Series{{X: 0, Y: 1}, {X: 2, Y: 3}, {X: 4, Y: 2}, {X: 6, Y: 5}}
	b := chart.Series{{X: 0, Y: 2}, {X: 6, Y: 1}}
	if err := c.Plot(a).Plot(b).Done(); err != nil {
		t.Fatal(err)
	}

	els := elements(t, buf.Bytes())
	if len(els["svg"]) != 1 {
		t.Fatalf("expected one svg root, got %d", len(els["svg"]))
	}
	// 17 gridlines and 2 curves
	if n := len(els["path"]); n != 17+2 {
		t.Errorf("expected 19 paths, got %d", n)
	}
	if n := len(els["text"]); n != 17 {
		t.Errorf("expected 17 labels, got %d", n)
	}
	if n := len(els["circle"]); n != 2*(len(a)+len(b)) {
		t.Errorf("unexpected number of markers %d", n)
	}
	if n := len(els["rect"]); n != 2 {
		t.Errorf("expected 2 rects, got %d", n)
	}
	for _, p := range els["path"] {
		if strings.ContainsAny(attr(p, "d"), "Rr") {
			t.Errorf("Catmull-Rom command should be converted: %s", attr(p, "d"))
		}
	}
	curve := els["path"][17]
	if d := attr(curve, "d"); !strings.HasPrefix(d, "M40.000,") || strings.Count(d, "C") != len(a)-1 {
		t.Errorf("unexpected curve %s", d)
	}
	if s := attr(curve, "style"); !strings.Contains(s, "stroke:#ee7951") || !strings.Contains(s, "stroke-width:2") {
		t.Errorf("unexpected curve style %s", s)
	}
	if s := attr(els["path"][10], "style"); !strings.Contains(s, "stroke-dasharray:8,3") {
		t.Errorf("horizontal gridlines should be dashed: %s", s)
	}
}

func TestStraightPath(t *testing.T) {
	var buf bytes.Buffer
	doc := New(&buf, 100, 100)
	doc.Path("M 10 20L30 40", svgdraw.Style{Stroke: "red", StrokeWidth: 1.5, Join: svgdraw.Round})
	doc.Text(5, 5, "a < b", svgdraw.Style{})
	if err := doc.Done(); err != nil {
		t.Fatal(err)
	}
	els := elements(t, buf.Bytes())
	p := els["path"][0]
	if d := attr(p, "d"); d != "M 10 20L30 40" {
		t.Errorf("straight paths should be kept as is, got %s", d)
	}
	if s := attr(p, "style"); s != "fill:none;stroke:red;stroke-width:1.5;stroke-linejoin:round" {
		t.Errorf("unexpected style %s", s)
	}
	if !strings.Contains(buf.String(), "a &lt; b") {
		t.Errorf("text should be escaped")
	}
}

func TestErrors(t *testing.T) {
	doc := New(io.Discard, 100, 100)
	doc.Circle(1, 1, 1, svgdraw.Style{Fill: "#notacolor"})
	if err := doc.Done(); err == nil {
		t.Error("expected an error for an invalid color")
	}

	doc = New(io.Discard, 100, 100)
	doc.Path("M 1 1 R 2 X", svgdraw.Style{Stroke: "#000", StrokeWidth: 1})
	if err := doc.Done(); err == nil {
		t.Error("expected an error for an invalid path")
	}

	errWrite := errors.New("disk full")
	doc = New(failingWriter{errWrite}, 100, 100)
	doc.Rect(0, 0, 10, 10, 2, svgdraw.Style{Fill: "#fff"})
	if err := doc.Done(); !errors.Is(err, errWrite) {
		t.Errorf("expected the write error, got %v", err)
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }
