package literal

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders a non-negative, non-NaN float64 the way ECMAScript
// Number::toString does: shortest round-trip digits, plain decimal notation
// for exponents in (-7, 21], exponential notation otherwise.
func formatNumber(x float64) string {
	if math.IsInf(x, 1) {
		return "Infinity"
	}
	if x == 0 {
		return "0"
	}

	// d.ddddde±XX
	e := strconv.FormatFloat(x, 'e', -1, 64)
	mant, exp, _ := strings.Cut(e, "e")
	digits := strings.Replace(mant, ".", "", 1)
	pow, _ := strconv.Atoi(exp)
	k := len(digits)
	n := pow + 1

	var b strings.Builder
	switch {
	case k <= n && n <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if n-1 > 0 {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
		b.WriteString(strconv.Itoa(abs(n - 1)))
	}
	return b.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
