package calculator

// CalcRequest is the JSON body for POST /calculator/{operator}. Operands are
// raw text, validated server-side exactly like user input.
type CalcRequest struct {
	OperandOne string `json:"operand_one"`
	OperandTwo string `json:"operand_two"`
}

// CalcResponse is the JSON response for a successful computation.
type CalcResponse struct {
	Operation  string  `json:"operation"`
	OperandOne string  `json:"operand_one"`
	OperandTwo string  `json:"operand_two"`
	Value      float64 `json:"value"`
	Result     string  `json:"result"`
}

// OperatorInfo describes one supported operator.
type OperatorInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// OperatorsResponse is the JSON response for GET /calculator/operators.
type OperatorsResponse struct {
	Operators []OperatorInfo `json:"operators"`
}

// ListOperators returns the supported operators in display order.
func ListOperators() []OperatorInfo {
	out := make([]OperatorInfo, 0, len(Operators))
	for _, op := range Operators {
		out = append(out, OperatorInfo{Name: op.String(), Symbol: op.Symbol()})
	}
	return out
}
