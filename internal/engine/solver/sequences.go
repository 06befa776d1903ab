package solver

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var (
	arithmeticSequencePattern = regexp.MustCompile(`a\s*=\s*(\d+).*d\s*=\s*(\d+).*n\s*=\s*(\d+)`)
	geometricSequencePattern  = regexp.MustCompile(`a\s*=\s*(\d+).*r\s*=\s*(\d+).*n\s*=\s*(\d+)`)
)

// sequenceParams holds the first term, the common difference or ratio, and
// the requested term index.
type sequenceParams struct {
	first, step, n int64
}

// ArithmeticSequence finds the nth term of "arithmetic sequence a=.. d=.. n=..".
var ArithmeticSequence = newClassifier("arithmetic_sequence", matchArithmeticSequence, solveArithmeticSequence)

// GeometricSequence finds the nth term of "geometric sequence a=.. r=.. n=..".
var GeometricSequence = newClassifier("geometric_sequence", matchGeometricSequence, solveGeometricSequence)

func matchArithmeticSequence(q string) (sequenceParams, bool) {
	if !strings.Contains(q, "arithmetic") || !strings.Contains(q, "sequence") {
		return sequenceParams{}, false
	}
	return matchSequence(arithmeticSequencePattern, q)
}

func matchGeometricSequence(q string) (sequenceParams, bool) {
	if !strings.Contains(q, "geometric") || !strings.Contains(q, "sequence") {
		return sequenceParams{}, false
	}
	return matchSequence(geometricSequencePattern, q)
}

func matchSequence(pattern *regexp.Regexp, q string) (sequenceParams, bool) {
	m := pattern.FindStringSubmatch(q)
	if m == nil {
		return sequenceParams{}, false
	}
	first, ok1 := parseInt(m[1])
	step, ok2 := parseInt(m[2])
	n, ok3 := parseInt(m[3])
	if !ok1 || !ok2 || !ok3 {
		return sequenceParams{}, false
	}
	return sequenceParams{first: first, step: step, n: n}, true
}

func solveArithmeticSequence(p sequenceParams) (*Result, bool) {
	offset := new(big.Int).Mul(big.NewInt(p.n-1), big.NewInt(p.step))
	term := new(big.Int).Add(big.NewInt(p.first), offset)
	label := fmt.Sprintf("a_%d", p.n)

	return &Result{
		Expression: fmt.Sprintf("Arithmetic sequence: a=%d, d=%d, n=%d", p.first, p.step, p.n),
		Result:     fmt.Sprintf("%s = %s", label, term),
		Steps: []string{
			"Formula: aₙ = a₁ + (n-1)d",
			fmt.Sprintf("Given: a₁=%d, d=%d, n=%d", p.first, p.step, p.n),
			fmt.Sprintf("%s = %d + (%d-1)×%d", label, p.first, p.n, p.step),
			fmt.Sprintf("%s = %d + %s", label, p.first, offset),
			fmt.Sprintf("%s = %s", label, term),
		},
		Explanation: "An arithmetic sequence has a constant difference (d) between consecutive terms. The nth term is found using the formula aₙ = a₁ + (n-1)d.",
		Speech:      fmt.Sprintf("The %s term of the arithmetic sequence is %s", ordinal(p.n), term),
	}, true
}

func solveGeometricSequence(p sequenceParams) (*Result, bool) {
	if p.n < 1 {
		return nil, false
	}
	power, ok := intPow(p.step, p.n-1)
	if !ok {
		return nil, false
	}
	term := new(big.Int).Mul(big.NewInt(p.first), power)
	if term.BitLen() > maxResultBits {
		return nil, false
	}
	label := fmt.Sprintf("a_%d", p.n)

	return &Result{
		Expression: fmt.Sprintf("Geometric sequence: a=%d, r=%d, n=%d", p.first, p.step, p.n),
		Result:     fmt.Sprintf("%s = %s", label, term),
		Steps: []string{
			"Formula: aₙ = a₁ × r^(n-1)",
			fmt.Sprintf("Given: a₁=%d, r=%d, n=%d", p.first, p.step, p.n),
			fmt.Sprintf("%s = %d × %d^(%d-1)", label, p.first, p.step, p.n),
			fmt.Sprintf("%s = %d × %d^%d", label, p.first, p.step, p.n-1),
			fmt.Sprintf("%s = %d × %s", label, p.first, power),
			fmt.Sprintf("%s = %s", label, term),
		},
		Explanation: "A geometric sequence has a constant ratio (r) between consecutive terms. The nth term is found using the formula aₙ = a₁ × r^(n-1).",
		Speech:      fmt.Sprintf("The %s term of the geometric sequence is %s", ordinal(p.n), term),
	}, true
}
