package calculator

import (
	"fmt"
	"strings"
)

// Operator selects one of the four arithmetic operations.
type Operator int

const (
	Add Operator = iota + 1
	Sub
	Mul
	Div
)

// Operators lists every supported operator in display order.
var Operators = []Operator{Add, Sub, Mul, Div}

var operatorNames = map[Operator]struct{ name, symbol string }{
	Add: {"add", "+"},
	Sub: {"subtract", "-"},
	Mul: {"multiply", "*"},
	Div: {"divide", "/"},
}

var operatorAliases = map[string]Operator{
	"add":      Add,
	"plus":     Add,
	"+":        Add,
	"subtract": Sub,
	"sub":      Sub,
	"minus":    Sub,
	"-":        Sub,
	"multiply": Mul,
	"mul":      Mul,
	"times":    Mul,
	"*":        Mul,
	"x":        Mul,
	"divide":   Div,
	"div":      Div,
	"/":        Div,
}

// String returns the canonical operator name, e.g. "add".
func (o Operator) String() string {
	if n, ok := operatorNames[o]; ok {
		return n.name
	}
	return fmt.Sprintf("operator(%d)", int(o))
}

// Symbol returns the arithmetic symbol, e.g. "+". Unknown operators yield "?".
func (o Operator) Symbol() string {
	if n, ok := operatorNames[o]; ok {
		return n.symbol
	}
	return "?"
}

// Valid reports whether o is one of the four defined operators.
func (o Operator) Valid() bool {
	_, ok := operatorNames[o]
	return ok
}

// ParseOperator resolves a name, short name or symbol (case-insensitive).
func ParseOperator(s string) (Operator, error) {
	op, ok := operatorAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, &Error{Kind: KindUnsupportedOperator, Input: s}
	}
	return op, nil
}
