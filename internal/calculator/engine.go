package calculator

// Compute applies op to a and b.
//
// Division by zero (positive or negative) is rejected explicitly instead of
// producing an IEEE infinity or NaN.
func Compute(op Operator, a, b float64) (float64, error) {
	if !op.Valid() {
		return 0, &Error{Kind: KindUnsupportedOperator, Input: op.String()}
	}

	switch op {
	case Add:
		return a + b, nil
	case Sub:
		return a - b, nil
	case Mul:
		return a * b, nil
	default:
		if b == 0 {
			return 0, &Error{Kind: KindDivisionByZero}
		}
		return a / b, nil
	}
}
