package solver

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Result is a solved query.
type Result struct {
	Classifier  string   `json:"classifier" yaml:"classifier"`
	Expression  string   `json:"expression" yaml:"expression"`
	Result      string   `json:"result" yaml:"result"`
	Steps       []string `json:"steps" yaml:"steps"`
	Explanation string   `json:"explanation" yaml:"explanation"`
	Speech      string   `json:"speech" yaml:"speech"`
}

// formatNumber renders v the way the search page displays plain numbers:
// shortest round-trip decimal, exponent form outside [1e-6, 1e21).
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		s = strings.Replace(s, "e+0", "e+", 1)
		return strings.Replace(s, "e-0", "e-", 1)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fixed renders v with the given number of decimals. Negative zero prints
// without a sign.
func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v+0, 'f', decimals, 64)
}

func fixed4(v float64) string { return fixed(v, 4) }
func fixed2(v float64) string { return fixed(v, 2) }

// signed wraps negative integers in parentheses for use inside formulas.
func signed(v int64) string {
	if v < 0 {
		return fmt.Sprintf("(%d)", v)
	}
	return strconv.FormatInt(v, 10)
}

func joinInts(nums []int64, sep string) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.FormatInt(n, 10)
	}
	return strings.Join(parts, sep)
}

// parseInt parses a run of ASCII digits captured by a pattern. Values that do
// not fit in int64 are rejected.
func parseInt(digits string) (int64, bool) {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
