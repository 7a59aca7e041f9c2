package svgdraw

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var errBadColor = errors.New("invalid color")

// PlainColor is a color without gradient.
type PlainColor = color.NRGBA

// NewPlainColor returns the opaque color (r, g, b) with alpha `a`.
func NewPlainColor(r, g, b, a uint8) PlainColor {
	return PlainColor{R: r, G: g, B: b, A: a}
}

func isNone(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "none") || strings.EqualFold(s, "transparent")
}

// ParseColor reads a CSS color : #rgb, #rrggbb, rgb(r,g,b)
// or an SVG color name.
// It returns false if `s` is empty or "none", meaning
// painting is disabled.
func ParseColor(s string) (PlainColor, bool, error) {
	if isNone(s) {
		return PlainColor{}, false, nil
	}
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := parseHex(s[1:])
		if err != nil {
			return c, false, fmt.Errorf("%w: %q", err, s)
		}
		return c, true, nil
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		var vals [3]uint8
		parts := strings.Split(s[4:len(s)-1], ",")
		if len(parts) != 3 {
			return PlainColor{}, false, fmt.Errorf("%w: %q", errBadColor, s)
		}
		for i, part := range parts {
			part = strings.TrimSpace(part)
			if strings.HasSuffix(part, "%") {
				f, err := strconv.ParseFloat(strings.TrimSuffix(part, "%"), 64)
				if err != nil || !(f >= 0 && f <= 100) {
					return PlainColor{}, false, fmt.Errorf("%w: %q", errBadColor, s)
				}
				vals[i] = uint8(f * 255 / 100)
				continue
			}
			v, err := strconv.ParseUint(part, 10, 8)
			if err != nil {
				return PlainColor{}, false, fmt.Errorf("%w: %q", errBadColor, s)
			}
			vals[i] = uint8(v)
		}
		return NewPlainColor(vals[0], vals[1], vals[2], 0xff), true, nil
	}
	c, ok := colornames.Map[s]
	if !ok {
		return PlainColor{}, false, fmt.Errorf("%w: %q", errBadColor, s)
	}
	return NewPlainColor(c.R, c.G, c.B, c.A), true, nil
}

func parseHex(s string) (PlainColor, error) {
	switch len(s) {
	case 3:
		v, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return PlainColor{}, errBadColor
		}
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return NewPlainColor(r*0x11, g*0x11, b*0x11, 0xff), nil
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return PlainColor{}, errBadColor
		}
		return NewPlainColor(uint8(v>>16), uint8(v>>8), uint8(v), 0xff), nil
	default:
		return PlainColor{}, errBadColor
	}
}

// CheckStyle validates the colors of `st`.
func CheckStyle(st Style) error {
	if _, _, err := ParseColor(st.Fill); err != nil {
		return err
	}
	_, _, err := ParseColor(st.Stroke)
	return err
}
