package solver

import (
	"fmt"
	"regexp"
	"strings"
)

var percentPattern = regexp.MustCompile(`(\d+)\s*%\s*of\s*(\d+)|(\d+)\s*percent\s*of\s*(\d+)`)

type percentParams struct {
	percent, total int64
}

// Percentage handles "<p>% of <t>" and "<p> percent of <t>".
var Percentage = newClassifier("percentage", matchPercentage, solvePercentage)

func matchPercentage(q string) (percentParams, bool) {
	if !strings.Contains(q, "%") && !strings.Contains(q, "percent") {
		return percentParams{}, false
	}
	m := percentPattern.FindStringSubmatch(q)
	if m == nil {
		return percentParams{}, false
	}

	p, t := m[1], m[2]
	if p == "" {
		p, t = m[3], m[4]
	}
	percent, ok1 := parseInt(p)
	total, ok2 := parseInt(t)
	if !ok1 || !ok2 {
		return percentParams{}, false
	}
	return percentParams{percent: percent, total: total}, true
}

func solvePercentage(p percentParams) (*Result, bool) {
	decimal := formatNumber(float64(p.percent) / 100)
	// Multiplying before dividing keeps whole-number answers exact.
	result := formatNumber(float64(p.percent) * float64(p.total) / 100)

	return &Result{
		Expression: fmt.Sprintf("%d%% of %d", p.percent, p.total),
		Result:     result,
		Steps: []string{
			fmt.Sprintf("Convert %d%% to decimal: %d ÷ 100 = %s", p.percent, p.percent, decimal),
			fmt.Sprintf("Multiply by %d: %s × %d", p.total, decimal, p.total),
			"Result: " + result,
		},
		Explanation: "To find a percentage of a number, convert the percentage to a decimal by dividing by 100, then multiply by the total. Percentages are used extensively in finance, statistics, and everyday calculations.",
		Speech:      fmt.Sprintf("%d percent of %d equals %s", p.percent, p.total, result),
	}, true
}
