package solver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxFactorial is the largest n whose factorial fits in a uint64.
const MaxFactorial = 20

var (
	factorialPattern     = regexp.MustCompile(`(\d+)!`)
	factorialWordPattern = regexp.MustCompile(`factorial\s*(?:of\s*)?(\d+)`)
)

// Factorial handles "n!" and "factorial of n" for n <= MaxFactorial.
var Factorial = newClassifier("factorial", matchFactorial, solveFactorial)

func matchFactorial(q string) (int64, bool) {
	if !strings.Contains(q, "!") && !strings.Contains(q, "factorial") {
		return 0, false
	}
	m := factorialPattern.FindStringSubmatch(q)
	if m == nil {
		m = factorialWordPattern.FindStringSubmatch(q)
	}
	if m == nil {
		return 0, false
	}
	// Digit runs too long for int64 are certainly above the guard; keep them
	// matched so the solver declines them.
	n, ok := parseInt(m[1])
	if !ok {
		return MaxFactorial + 1, true
	}
	return n, true
}

func solveFactorial(n int64) (*Result, bool) {
	if n > MaxFactorial {
		return nil, false
	}

	var product uint64 = 1
	multiplicands := make([]string, 0, n)
	for i := n; i > 0; i-- {
		product *= uint64(i)
		multiplicands = append(multiplicands, strconv.FormatInt(i, 10))
	}
	result := strconv.FormatUint(product, 10)

	steps := []string{fmt.Sprintf("Calculate %d! (%d factorial)", n, n)}
	if n == 0 {
		steps = append(steps, "0! = 1 (the empty product)")
	} else {
		steps = append(steps, fmt.Sprintf("%d! = %s", n, strings.Join(multiplicands, " × ")))
	}
	steps = append(steps, fmt.Sprintf("%d! = %s", n, result))

	return &Result{
		Expression:  fmt.Sprintf("%d!", n),
		Result:      result,
		Steps:       steps,
		Explanation: fmt.Sprintf("Factorial: the product of all positive integers less than or equal to %d. Factorials are used in permutations, combinations, and probability calculations.", n),
		Speech:      fmt.Sprintf("%d factorial equals %s", n, result),
	}, true
}
