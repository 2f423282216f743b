package calculator

import (
	"errors"
	"fmt"
)

// ComputationError is the only failure text ever shown to a user.
const ComputationError = "Computation error"

// Kind tags a calculator failure.
type Kind int

const (
	KindEmptyInput Kind = iota + 1
	KindFormat
	KindDivisionByZero
	KindUnsupportedOperator
)

func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty_input"
	case KindFormat:
		return "format"
	case KindDivisionByZero:
		return "division_by_zero"
	case KindUnsupportedOperator:
		return "unsupported_operator"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinels for errors.Is. A *Error matches the sentinel of its Kind.
var (
	ErrEmptyInput          = &Error{Kind: KindEmptyInput}
	ErrFormat              = &Error{Kind: KindFormat}
	ErrDivisionByZero      = &Error{Kind: KindDivisionByZero}
	ErrUnsupportedOperator = &Error{Kind: KindUnsupportedOperator}
)

// Error is the tagged failure returned by every calculator operation.
// Input holds the offending text or operator, when there is one.
type Error struct {
	Kind  Kind
	Input string
	Err   error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindEmptyInput:
		msg = "operand cannot be empty"
	case KindFormat:
		msg = fmt.Sprintf("invalid number %q", e.Input)
	case KindDivisionByZero:
		msg = "division by zero"
	case KindUnsupportedOperator:
		msg = fmt.Sprintf("unsupported operator %q", e.Input)
	default:
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error of the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind carried by err, or 0 when err is not a calculator error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
