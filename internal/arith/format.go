package arith

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v in its shortest round-tripping decimal form.
// Zero (including negative zero) is "0". Magnitudes of 1e21 and above, or
// below 1e-6, use exponent notation without a zero-padded exponent
// ("1e+21", "1e-7").
func FormatNumber(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}
