package solver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var integerPattern = regexp.MustCompile(`\d+`)

// Mean averages every integer embedded in a "mean"/"average" query.
var Mean = newClassifier("mean", matchMean, solveMean)

func matchMean(q string) ([]int64, bool) {
	if !strings.Contains(q, "mean") && !strings.Contains(q, "average") {
		return nil, false
	}
	runs := integerPattern.FindAllString(q, -1)
	if len(runs) < 2 {
		return nil, false
	}

	nums := make([]int64, 0, len(runs))
	for _, run := range runs {
		n, ok := parseInt(run)
		if !ok {
			return nil, false
		}
		nums = append(nums, n)
	}
	return nums, true
}

func solveMean(nums []int64) (*Result, bool) {
	values := make([]float64, len(nums))
	for i, n := range nums {
		values[i] = float64(n)
	}
	sum := floats.Sum(values)
	mean := stat.Mean(values, nil)
	count := strconv.Itoa(len(nums))

	return &Result{
		Expression: "Mean of: " + joinInts(nums, ", "),
		Result:     fixed4(mean),
		Steps: []string{
			"Numbers: " + joinInts(nums, ", "),
			fmt.Sprintf("Sum: %s = %s", joinInts(nums, " + "), formatNumber(sum)),
			"Count: " + count,
			fmt.Sprintf("Mean = Sum ÷ Count = %s ÷ %s", formatNumber(sum), count),
			"Mean = " + fixed4(mean),
		},
		Explanation: "The mean (average) is calculated by summing all values and dividing by the count. It represents the central tendency of the data.",
		Speech:      "The mean of these numbers is " + fixed2(mean),
	}, true
}
