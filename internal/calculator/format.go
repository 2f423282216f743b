package calculator

import (
	"math"
	"strconv"
	"strings"
)

// FormatResult renders v the way the calculator display shows numbers:
// the shortest digits that round-trip, always with a fractional part
// ("6.0"), and scientific notation outside [1e-3, 1e7) ("1.0E7", "2.5E-4").
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	// strconv writes a signed, zero-padded exponent ("e+07", "e-05").
	n, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(n)
}
