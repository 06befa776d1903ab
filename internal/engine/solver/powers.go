package solver

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// maxResultBits bounds exact integer powers to the range a float64 can
// represent, keeping every computation small.
const maxResultBits = 1024

var (
	sqrtPattern     = regexp.MustCompile(`sqrt\((\d+)\)|√(\d+)`)
	exponentPattern = regexp.MustCompile(`(\d+)\s*[\^*]{1,2}\s*(\d+)`)
)

// SquareRoot handles "sqrt(n)" and "√n".
var SquareRoot = newClassifier("sqrt", matchSquareRoot, solveSquareRoot)

func matchSquareRoot(q string) (int64, bool) {
	if !strings.Contains(q, "sqrt") && !strings.Contains(q, "√") {
		return 0, false
	}
	m := sqrtPattern.FindStringSubmatch(q)
	if m == nil {
		return 0, false
	}
	digits := m[1]
	if digits == "" {
		digits = m[2]
	}
	return parseInt(digits)
}

func solveSquareRoot(n int64) (*Result, bool) {
	root := fixed4(math.Sqrt(float64(n)))
	return &Result{
		Expression: fmt.Sprintf("√%d", n),
		Result:     root,
		Steps: []string{
			fmt.Sprintf("Find the square root of %d", n),
			fmt.Sprintf("√%d = %s", n, root),
			fmt.Sprintf("Verification: %s × %s ≈ %d", root, root, n),
		},
		Explanation: fmt.Sprintf("The square root of %d is the number that, when multiplied by itself, equals %d. This is a fundamental operation in algebra and geometry.", n, n),
		Speech:      fmt.Sprintf("The square root of %d is approximately %s", n, fixed2(math.Sqrt(float64(n)))),
	}, true
}

type powerParams struct {
	base, exp int64
}

// Exponent handles integer powers written with "^" or "**".
var Exponent = newClassifier("exponent", matchExponent, solveExponent)

func matchExponent(q string) (powerParams, bool) {
	if !strings.Contains(q, "^") && !strings.Contains(q, "**") {
		return powerParams{}, false
	}
	m := exponentPattern.FindStringSubmatch(q)
	if m == nil {
		return powerParams{}, false
	}
	base, ok1 := parseInt(m[1])
	exp, ok2 := parseInt(m[2])
	if !ok1 || !ok2 {
		return powerParams{}, false
	}
	return powerParams{base: base, exp: exp}, true
}

func solveExponent(p powerParams) (*Result, bool) {
	power, ok := intPow(p.base, p.exp)
	if !ok {
		return nil, false
	}
	result := power.String()

	return &Result{
		Expression: fmt.Sprintf("%d^%d", p.base, p.exp),
		Result:     result,
		Steps: []string{
			fmt.Sprintf("Calculate %d raised to the power of %d", p.base, p.exp),
			expandPower(p.base, p.exp),
			"Result: " + result,
		},
		Explanation: fmt.Sprintf("Exponentiation: %d multiplied by itself %d times. This represents repeated multiplication and is fundamental in exponential growth calculations.", p.base, p.exp),
		Speech:      fmt.Sprintf("%d to the power of %d equals %s", p.base, p.exp, result),
	}, true
}

// intPow computes base^exp exactly for non-negative operands, refusing
// results wider than maxResultBits.
func intPow(base, exp int64) (*big.Int, bool) {
	if base < 0 || exp < 0 {
		return nil, false
	}
	if base > 1 && float64(exp)*math.Log2(float64(base)) >= maxResultBits {
		return nil, false
	}
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), nil), true
}

// expandPower writes the repeated multiplication out in full for small
// exponents.
func expandPower(base, exp int64) string {
	switch {
	case exp == 0:
		return fmt.Sprintf("%d^0 = 1 (the empty product)", base)
	case exp == 1:
		return fmt.Sprintf("%d^1 = %d", base, base)
	case exp > 12:
		return fmt.Sprintf("%d^%d = %d × %d × ... (%d times)", base, exp, base, base, exp)
	}

	factors := make([]string, exp)
	for i := range factors {
		factors[i] = strconv.FormatInt(base, 10)
	}
	return fmt.Sprintf("%d^%d = %s (%d times)", base, exp, strings.Join(factors, " × "), exp)
}
