package solver

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strings"
)

// Only the as-written "ax^2 ± bx ± c = 0" shape is recognized. Omitted a and
// b coefficients default to 1.
var quadraticPattern = regexp.MustCompile(`(\d*)x\^?2\s*([+-])\s*(\d*)x\s*([+-])\s*(\d+)\s*=\s*0`)

// Roots describes which of the three outcomes a quadratic has.
type Roots int

const (
	TwoRealRoots Roots = iota
	OneRepeatedRoot
	ComplexRoots
)

func (r Roots) String() string {
	switch r {
	case TwoRealRoots:
		return "two_real"
	case OneRepeatedRoot:
		return "one_repeated"
	default:
		return "complex"
	}
}

type quadraticParams struct {
	source  string
	a, b, c int64
}

// Quadratic solves "ax^2 + bx + c = 0" with the quadratic formula.
var Quadratic = newClassifier("quadratic", matchQuadratic, solveQuadratic)

func matchQuadratic(q string) (quadraticParams, bool) {
	if !strings.Contains(q, "x^2") && !strings.Contains(q, "x²") {
		return quadraticParams{}, false
	}
	m := quadraticPattern.FindStringSubmatch(q)
	if m == nil {
		return quadraticParams{}, false
	}

	a, ok := coefficient(m[1])
	if !ok {
		return quadraticParams{}, false
	}
	b, ok1 := coefficient(m[3])
	c, ok2 := parseInt(m[5])
	if !ok1 || !ok2 {
		return quadraticParams{}, false
	}
	if m[2] == "-" {
		b = -b
	}
	if m[4] == "-" {
		c = -c
	}
	return quadraticParams{source: q, a: a, b: b, c: c}, true
}

func coefficient(digits string) (int64, bool) {
	if digits == "" {
		return 1, true
	}
	return parseInt(digits)
}

// Discriminant returns b² - 4ac computed exactly.
func Discriminant(a, b, c int64) *big.Int {
	bb := new(big.Int).Mul(big.NewInt(b), big.NewInt(b))
	ac := new(big.Int).Mul(big.NewInt(a), big.NewInt(c))
	return bb.Sub(bb, ac.Mul(ac, big.NewInt(4)))
}

// Classify reports the nature of the roots for a discriminant.
func Classify(disc *big.Int) Roots {
	switch disc.Sign() {
	case 1:
		return TwoRealRoots
	case 0:
		return OneRepeatedRoot
	default:
		return ComplexRoots
	}
}

func solveQuadratic(p quadraticParams) (*Result, bool) {
	// a = 0 is linear, not quadratic.
	if p.a == 0 {
		return nil, false
	}

	disc := Discriminant(p.a, p.b, p.c)
	coefficients := fmt.Sprintf("Identify coefficients: a=%d, b=%d, c=%d", p.a, p.b, p.c)
	discStep := fmt.Sprintf("Calculate discriminant: Δ = b² - 4ac = %s² - 4(%d)(%d) = %s", signed(p.b), p.a, p.c, disc)

	kind := Classify(disc)
	if kind == ComplexRoots {
		return &Result{
			Expression: p.source,
			Result:     "Complex solutions",
			Steps: []string{
				coefficients,
				discStep,
				"Δ < 0: No real solutions (complex roots)",
			},
			Explanation: "This quadratic equation has complex (imaginary) solutions because the discriminant is negative.",
			Speech:      "This quadratic equation has complex solutions, not real numbers",
		}, true
	}

	d, _ := new(big.Float).SetInt(disc).Float64()
	sqrtD := math.Sqrt(d)
	twoA := 2 * float64(p.a)
	x1 := (-float64(p.b) + sqrtD) / twoA
	x2 := (-float64(p.b) - sqrtD) / twoA

	steps := []string{coefficients, discStep}
	var result, speech string
	if kind == OneRepeatedRoot {
		result = "x = " + fixed4(x1)
		speech = "The quadratic equation has one solution: x equals " + fixed2(x1)
		steps = append(steps,
			"One real solution (Δ = 0)",
			"Apply quadratic formula: x = (-b ± √Δ) / 2a",
			fmt.Sprintf("x = (%d ± √0) / %d", -p.b, 2*p.a),
			fmt.Sprintf("x = %d / %d", -p.b, 2*p.a),
			result,
		)
	} else {
		result = fmt.Sprintf("x₁ = %s, x₂ = %s", fixed4(x1), fixed4(x2))
		speech = fmt.Sprintf("The quadratic equation has two solutions: x1 equals %s, and x2 equals %s", fixed2(x1), fixed2(x2))
		steps = append(steps,
			"Two real solutions (Δ > 0)",
			"Apply quadratic formula: x = (-b ± √Δ) / 2a",
			fmt.Sprintf("x = (%d ± √%s) / %d", -p.b, disc, 2*p.a),
			fmt.Sprintf("√%s = %s", disc, fixed4(sqrtD)),
			fmt.Sprintf("x₁ = (%d + %s) / %d = %s", -p.b, fixed4(sqrtD), 2*p.a, fixed4(x1)),
			fmt.Sprintf("x₂ = (%d - %s) / %d = %s", -p.b, fixed4(sqrtD), 2*p.a, fixed4(x2)),
			result,
		)
	}

	return &Result{
		Expression:  p.source,
		Result:      result,
		Steps:       steps,
		Explanation: "Quadratic equation solved using the quadratic formula. The discriminant (Δ) determines the nature of roots: Δ > 0 gives two real solutions, Δ = 0 gives one solution, Δ < 0 gives complex solutions.",
		Speech:      speech,
	}, true
}
