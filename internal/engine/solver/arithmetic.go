package solver

import (
	"regexp"

	"github.com/GriffinCanCode/MathSearch/backend/internal/engine/expr"
)

var arithmeticPattern = regexp.MustCompile(`^[\d\s+\-*/().]+$`)

// Arithmetic evaluates queries made only of numbers, operators, parentheses
// and whitespace.
var Arithmetic = newClassifier("arithmetic", matchArithmetic, solveArithmetic)

func matchArithmetic(q string) (string, bool) {
	return q, arithmeticPattern.MatchString(q)
}

func solveArithmetic(q string) (*Result, bool) {
	v, err := expr.Evaluate(q)
	if err != nil {
		return nil, false
	}

	value := formatNumber(v)
	return &Result{
		Expression: q,
		Result:     value,
		Steps: []string{
			"Original expression: " + q,
			"Apply order of operations (PEMDAS)",
			"Evaluated result: " + value,
		},
		Explanation: "Basic arithmetic calculation performed using standard order of operations (Parentheses, Exponents, Multiplication/Division, Addition/Subtraction).",
		Speech:      "Okay, I can help with that. " + q + " equals " + value,
	}, true
}
