package math

import "github.com/GriffinCanCode/MathSearch/backend/internal/shared/types"

func tools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.evaluate",
			Name:        "Evaluate",
			Description: "Evaluate an arithmetic expression with + - * / and parentheses",
			Parameters: []types.Parameter{
				{Name: "expression", Type: "string", Description: "Arithmetic expression", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.solve",
			Name:        "Solve",
			Description: "Classify a free-form math question and solve it step by step",
			Parameters: []types.Parameter{
				{Name: "query", Type: "string", Description: "Question such as sqrt(144) or 20% of 150", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "math.classifiers",
			Name:        "Classifiers",
			Description: "List supported problem types in dispatch order",
			Returns:     "array",
		},
		{
			ID:          "math.examples",
			Name:        "Examples",
			Description: "Example questions the solver answers",
			Parameters: []types.Parameter{
				{Name: "category", Type: "string", Description: "Optional category filter", Required: false},
			},
			Returns: "array",
		},
		{
			ID:          "math.mean",
			Name:        "Mean",
			Description: "Calculate arithmetic mean",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.median",
			Name:        "Median",
			Description: "Calculate median value",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.stdev",
			Name:        "Standard Deviation",
			Description: "Calculate sample standard deviation",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "number",
		},
	}
}
