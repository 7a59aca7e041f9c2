package svgpath

import (
	"math"
	"strings"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestBuilderLines(t *testing.T) {
	b := NewBuilder(false)
	if b.String() != "" || b.Len() != 0 {
		t.Fatalf("expected empty builder, got %q", b.String())
	}
	b.Add(0, 100)
	b.Add(50, 75)
	b.Add(100, 0)
	exp := "M 0 100L50 75L100 0"
	if got := b.String(); got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
	if b.Len() != 3 {
		t.Errorf("expected 3 points, got %d", b.Len())
	}
}

func TestBuilderSmooth(t *testing.T) {
	b := NewBuilder(true)
	b.Add(40, 440)
	if got := b.String(); got != "M 40 440 R" {
		t.Errorf("unexpected start %q", got)
	}
	b.Add(52.5, 420.25)
	b.Add(65, 400)
	exp := "M 40 440 R 52.5 420.25 65 400"
	if got := b.String(); got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
}

func TestSegment(t *testing.T) {
	if got := Segment(40, 448, 40, 40); got != "M40 448L40 40" {
		t.Errorf("unexpected segment %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	for _, tc := range []struct {
		v   float64
		exp string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{40, "40"},
		{-12.5, "-12.5"},
		{0.30000000000000004, "0.30000000000000004"},
		{123456789, "123456789"},
		{1e-6, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e21, "1.5e+21"},
		{math.NaN(), "NaN"},
		{math.Inf(-1), "-Infinity"},
	} {
		if got := FormatNumber(tc.v); got != tc.exp {
			t.Errorf("FormatNumber(%v): expected %q, got %q", tc.v, tc.exp, got)
		}
	}
}

func TestParseBuilderOutput(t *testing.T) {
	b := NewBuilder(false)
	b.Add(0, 100)
	b.Add(50, 75)
	b.Add(100, 0)
	p, err := Parse(b.String())
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 3 {
		t.Fatalf("expected 3 operations, got %d: %s", len(p), p)
	}
	if _, ok := p[0].(MoveTo); !ok {
		t.Errorf("expected a move to, got %T", p[0])
	}
	lines := 0
	for _, op := range p[1:] {
		if _, ok := op.(LineTo); ok {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("expected 2 lines, got %d", lines)
	}
	if last := p[2].(LineTo); last != (LineTo{X: 100 * 64, Y: 0}) {
		t.Errorf("unexpected end point %v", last)
	}
}

func TestParseCatmullRom(t *testing.T) {
	knots := [][2]float64{{10, 10}, {20, 40}, {30, 5}, {45, 20}}
	b := NewBuilder(true)
	for _, k := range knots {
		b.Add(k[0], k[1])
	}
	p, err := Parse(b.String())
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != len(knots) {
		t.Fatalf("expected one cubic per knot after the first, got %s", p)
	}
	for i, op := range p[1:] {
		cu, ok := op.(CubicTo)
		if !ok {
			t.Fatalf("expected a cubic, got %T", op)
		}
		// the curve goes through every knot
		if cu[2] != toFixedP(knots[i+1][0], knots[i+1][1]) {
			t.Errorf("segment %d ends at %v, expected %v", i, cu[2], knots[i+1])
		}
	}
}

func TestParseEmptyCatmullRom(t *testing.T) {
	p, err := Parse("M 3 4 R")
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 1 {
		t.Errorf("expected a single move to, got %s", p)
	}
}

func TestCatmullRomEndConditions(t *testing.T) {
	segs := CatmullRom([]float64{0, 0, 6, 0})
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	// with duplicated ends, the control points lie on the chord
	exp := BezierSegment{1, 0, 5, 0, 6, 0}
	if segs[0] != exp {
		t.Errorf("expected %v, got %v", exp, segs[0])
	}
	if CatmullRom([]float64{1, 2}) != nil {
		t.Error("expected no segment for a single knot")
	}
}

func TestParseCommands(t *testing.T) {
	for _, tc := range []struct {
		d   string
		ops int
	}{
		{"M0,0 10,10", 2},
		{"m1 1l2-2h3v4z", 5},
		{"M0 0C1 1 2 2 3 3S5 5 6 6", 3},
		{"M0 0Q1 1 2 2T4 4", 3},
		{"M10 10A5 5 0 0 1 20 10", 1 + 9},
		{"M1e2 1.5.5 1", 2},
		{"M 40 40 Z M 0 0 L 1 1", 4},
	} {
		p, err := Parse(tc.d)
		if err != nil {
			t.Errorf("%q: %s", tc.d, err)
			continue
		}
		if len(p) != tc.ops {
			t.Errorf("%q: expected %d operations, got %d (%s)", tc.d, tc.ops, len(p), p)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, d := range []string{
		"L 1 1",
		"M 1",
		"M 1 1 X 2 2",
		"M 1 1 L 2",
		"M 1 1 Z 3",
	} {
		if _, err := Parse(d); err == nil {
			t.Errorf("%q: expected error", d)
		}
	}
	if _, err := Parse("M 1 1 X 2 2"); err != ErrUnknownCommand {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestShapes(t *testing.T) {
	var p Path
	p.AddRect(40, 40, 560, 400, 0)
	if len(p) != 5 {
		t.Fatalf("expected 5 operations for a rect, got %d", len(p))
	}
	bb := p.Bounds()
	if bb.Min != toFixedP(40, 40) || bb.Max != toFixedP(600, 440) {
		t.Errorf("unexpected rect bounds %v", bb)
	}

	p.Clear()
	p.AddCircle(100, 50, 5)
	bb = p.Bounds()
	const tol = 4 // 1/16 pixel
	for _, d := range []fixed.Int26_6{
		bb.Min.X - toFixedP(95, 0).X,
		bb.Max.X - toFixedP(105, 0).X,
		bb.Min.Y - toFixedP(0, 45).Y,
		bb.Max.Y - toFixedP(0, 55).Y,
	} {
		if d > tol || d < -tol {
			t.Errorf("unexpected circle bounds %v", bb)
		}
	}

	p.Clear()
	p.AddRect(0, 0, 20, 10, 3)
	bb = p.Bounds()
	if bb.Min.X < -tol || bb.Min.Y < -tol || bb.Max.X > toFixedP(20, 0).X+tol || bb.Max.Y > toFixedP(0, 10).Y+tol {
		t.Errorf("rounded rect exceeds its box: %v", bb)
	}
}

func TestBoundsCurve(t *testing.T) {
	// the control point lies above the curve extremum
	p, err := Parse("M0 0Q50 100 100 0")
	if err != nil {
		t.Fatal(err)
	}
	bb := p.Bounds()
	if bb.Max.Y != toFixedP(0, 50).Y {
		t.Errorf("expected the curve to reach y=50, got %v", bb.Max.Y)
	}
	if (Path{}).Bounds() != (fixed.Rectangle26_6{}) {
		t.Error("expected empty bounds for an empty path")
	}
}

type countingAdder struct {
	starts, lines, quads, cubes, stops, closes int
}

func (c *countingAdder) Start(fixed.Point26_6) { c.starts++ }
func (c *countingAdder) Line(fixed.Point26_6) { c.lines++ }
func (c *countingAdder) QuadBezier(_, _ fixed.Point26_6) { c.quads++ }
func (c *countingAdder) CubeBezier(_, _, _ fixed.Point26_6) { c.cubes++ }
func (c *countingAdder) Stop(closeLoop bool) {
	c.stops++
	if closeLoop {
		c.closes++
	}
}

func TestAddTo(t *testing.T) {
	p, err := Parse("M0 0L1 1Q2 2 3 3C4 4 5 5 6 6Z M10 10 L 11 11")
	if err != nil {
		t.Fatal(err)
	}
	var c countingAdder
	p.AddTo(&c)
	if c.starts != 2 || c.lines != 2 || c.quads != 1 || c.cubes != 1 {
		t.Errorf("unexpected operations %+v", c)
	}
	if c.stops != 2 || c.closes != 1 {
		t.Errorf("unexpected stops %+v", c)
	}
	if !strings.HasPrefix(p.ToSVGPath(), "M0.000,0.000 L1.000,1.000 Q") {
		t.Errorf("unexpected svg path %s", p.ToSVGPath())
	}
}
