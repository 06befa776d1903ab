package math

import (
	"context"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/GriffinCanCode/MathSearch/backend/internal/shared/types"
)

// Mean calculates arithmetic mean
func (p *Provider) Mean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := GetNumbers(params, "numbers")
	if !ok || len(numbers) == 0 {
		return Failure("numbers array required")
	}

	return Success(NumberData(stat.Mean(numbers, nil)))
}

// Median calculates the median value
func (p *Provider) Median(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := GetNumbers(params, "numbers")
	if !ok || len(numbers) == 0 {
		return Failure("numbers array required")
	}

	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	var median float64
	n := len(sorted)
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return Success(NumberData(median))
}

// Stdev calculates sample standard deviation
func (p *Provider) Stdev(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := GetNumbers(params, "numbers")
	if !ok || len(numbers) < 2 {
		return Failure("at least 2 numbers required")
	}

	return Success(NumberData(stat.StdDev(numbers, nil)))
}
