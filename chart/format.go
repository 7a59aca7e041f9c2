package chart

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgchart/svgpath"
)

var half = big.NewFloat(0.5)

// toFixed formats `v` with exactly `digits` decimals.
// Unlike strconv, exact ties are rounded away from zero,
// and negative zero is written without sign.
// Values of magnitude 1e21 and above use the shortest notation.
func toFixed(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.Abs(v) >= 1e21: // including infinities
		return svgpath.FormatNumber(v)
	}
	neg := v < 0
	abs := math.Abs(v)

	out := strconv.FormatFloat(abs, 'f', digits, 64)

	// abs * 10^digits is exact with enough precision,
	// so a tie is detected without rounding error
	scaled := new(big.Float).SetPrec(512).SetFloat64(abs)
	scaled.Mul(scaled, new(big.Float).SetPrec(512).SetFloat64(math.Pow10(digits)))
	ip, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(512).Sub(scaled, new(big.Float).SetPrec(512).SetInt(ip))
	if frac.Cmp(half) == 0 {
		ip.Add(ip, big.NewInt(1))
		out = insertPoint(ip.String(), digits)
	}

	if neg {
		out = "-" + out
	}
	return out
}

// insertPoint writes the integer `n` (in decimal) divided by 10^digits
func insertPoint(n string, digits int) string {
	if digits <= 0 {
		return n
	}
	if len(n) <= digits {
		n = strings.Repeat("0", digits-len(n)+1) + n
	}
	return n[:len(n)-digits] + "." + n[len(n)-digits:]
}
