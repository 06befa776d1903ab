package math

import (
	"math"
	"strconv"

	"github.com/GriffinCanCode/MathSearch/backend/internal/shared/types"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// FailureWith creates a failed result that still carries data, such as an
// error kind the caller can branch on.
func FailureWith(message string, data map[string]interface{}) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg, Data: data}, nil
}

// NumberData carries a numeric tool result as "result" plus its "display"
// text. JSON has no encoding for infinities or NaN, so those leave "result"
// nil and only "display" ("+Inf", "-Inf", "NaN") describes the value.
func NumberData(v float64) map[string]interface{} {
	data := map[string]interface{}{
		"result":  nil,
		"display": strconv.FormatFloat(v, 'g', -1, 64),
	}
	if !math.IsInf(v, 0) && !math.IsNaN(v) {
		data["result"] = v
	}
	return data
}

// GetNumbers extracts array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	switch arr := params[key].(type) {
	case []float64:
		return arr, true
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for _, v := range arr {
			switch num := v.(type) {
			case float64:
				numbers = append(numbers, num)
			case int:
				numbers = append(numbers, float64(num))
			case int64:
				numbers = append(numbers, float64(num))
			case float32:
				numbers = append(numbers, float64(num))
			default:
				return nil, false
			}
		}
		return numbers, true
	default:
		return nil, false
	}
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}
