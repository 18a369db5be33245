package interval

import (
	"fmt"

	"github.com/GriffinCanCode/asymintervals/ain"
	"github.com/GriffinCanCode/asymintervals/internal/service"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*service.Result, error) {
	return &service.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*service.Result, error) {
	msg := message
	return &service.Result{Success: false, Error: &msg}, nil
}

// GetNumber extracts float64 from params with type coercion
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return toNumber(val)
}

// GetNumbers extracts an array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}

	numbers := make([]float64, 0, len(arr))
	for _, v := range arr {
		num, ok := toNumber(v)
		if !ok {
			return nil, false
		}
		numbers = append(numbers, num)
	}
	return numbers, true
}

// GetInt extracts an integer from params
func GetInt(params map[string]interface{}, key string) (int, bool) {
	num, ok := GetNumber(params, key)
	if !ok || num != float64(int(num)) {
		return 0, false
	}
	return int(num), true
}

// GetString extracts a string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

func toNumber(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetInterval extracts an interval from params. It accepts a [lower,
// upper] or [lower, upper, expected] array, or an object with lower,
// upper, and optional expected fields.
func GetInterval(params map[string]interface{}, key string) (ain.AIN, error) {
	val, ok := params[key]
	if !ok {
		return ain.AIN{}, fmt.Errorf("%s parameter required", key)
	}
	return toInterval(val, key)
}

// GetIntervals extracts an array of intervals from params.
func GetIntervals(params map[string]interface{}, key string) ([]ain.AIN, error) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s must be an array of intervals", key)
	}

	items := make([]ain.AIN, 0, len(arr))
	for i, v := range arr {
		x, err := toInterval(v, fmt.Sprintf("%s[%d]", key, i))
		if err != nil {
			return nil, err
		}
		items = append(items, x)
	}
	return items, nil
}

// GetOperand extracts either an interval or a plain number from params.
func GetOperand(params map[string]interface{}, key string) (ain.Operand, error) {
	val, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("%s parameter required", key)
	}
	if num, ok := toNumber(val); ok {
		return ain.Scalar(num), nil
	}
	x, err := toInterval(val, key)
	if err != nil {
		return nil, err
	}
	return x, nil
}

func toInterval(val interface{}, name string) (ain.AIN, error) {
	switch v := val.(type) {
	case []interface{}:
		nums := make([]float64, 0, len(v))
		for _, el := range v {
			num, ok := toNumber(el)
			if !ok {
				return ain.AIN{}, fmt.Errorf("%s must contain only numbers", name)
			}
			nums = append(nums, num)
		}
		switch len(nums) {
		case 2:
			return ain.NewMidpoint(nums[0], nums[1])
		case 3:
			return ain.FromSlice(nums)
		default:
			return ain.AIN{}, fmt.Errorf("%s must have 2 or 3 elements, got %d", name, len(nums))
		}
	case map[string]interface{}:
		lower, ok := GetNumber(v, "lower")
		if !ok {
			return ain.AIN{}, fmt.Errorf("%s.lower required", name)
		}
		upper, ok := GetNumber(v, "upper")
		if !ok {
			return ain.AIN{}, fmt.Errorf("%s.upper required", name)
		}
		if expected, ok := GetNumber(v, "expected"); ok {
			return ain.New(lower, upper, expected)
		}
		return ain.NewMidpoint(lower, upper)
	default:
		return ain.AIN{}, fmt.Errorf("%s must be an interval array or object", name)
	}
}

// intervalData is the standard payload for a computed interval.
func intervalData(x ain.AIN) map[string]interface{} {
	return map[string]interface{}{
		"interval": []float64{x.Lower(), x.Upper(), x.Expected()},
		"lower":    x.Lower(),
		"upper":    x.Upper(),
		"expected": x.Expected(),
	}
}
