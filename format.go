package geom

import (
	"math"
	"strconv"
	"strings"
)

// formatNum renders v as the shortest decimal that round-trips. Magnitudes
// below 1e-6 or at least 1e21 use exponent form with an unpadded exponent
// ("1e+21", "1.5e-7"); everything else is plain decimal. Negative zero
// prints as "0".
func formatNum(v float64) string {
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		// NaN and infinities have no exponent.
		return s
	}
	exp := strings.TrimLeft(s[i+2:], "0")
	return s[:i+2] + exp
}
