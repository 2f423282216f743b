package calculator

import (
	"math"
	"strconv"
	"strings"
)

// ParseOperand validates operand text and converts it to a float64.
//
// Empty text fails with KindEmptyInput. Anything else that is not a finite
// decimal number fails with KindFormat; whitespace-only text falls in that
// second group. Leading and trailing whitespace around a number is ignored.
func ParseOperand(text string) (float64, error) {
	if text == "" {
		return 0, &Error{Kind: KindEmptyInput}
	}

	// strconv accepts Go literal underscores ("1_000"); user input must not.
	if strings.ContainsRune(text, '_') {
		return 0, &Error{Kind: KindFormat, Input: text}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &Error{Kind: KindFormat, Input: text, Err: err}
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &Error{Kind: KindFormat, Input: text}
	}

	return v, nil
}
