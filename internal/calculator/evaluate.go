package calculator

// Result is the outcome of one evaluation. Exactly one of Text or Err is set.
type Result struct {
	Value float64
	Text  string
	Err   error
}

// OK reports whether the evaluation produced a number.
func (r Result) OK() bool { return r.Err == nil }

// Kind returns the failure kind, or 0 on success.
func (r Result) Kind() Kind { return KindOf(r.Err) }

// Display returns what a user should see: the rendered number, or
// ComputationError for any failure.
func (r Result) Display() string {
	if r.Err != nil {
		return ComputationError
	}
	return r.Text
}

// Evaluate validates both operand texts, applies op and renders the result.
// Operand one is checked before operand two; the first failure is reported.
func Evaluate(op Operator, one, two string) Result {
	a, err := ParseOperand(one)
	if err != nil {
		return Result{Err: err}
	}

	b, err := ParseOperand(two)
	if err != nil {
		return Result{Err: err}
	}

	v, err := Compute(op, a, b)
	if err != nil {
		return Result{Err: err}
	}

	return Result{Value: v, Text: FormatResult(v)}
}
