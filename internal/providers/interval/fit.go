package interval

import (
	"context"

	"github.com/GriffinCanCode/asymintervals/fit"
	"github.com/GriffinCanCode/asymintervals/internal/service"
)

// fitSample estimates an interval from raw observations
func (p *Provider) fitSample(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	values, ok := GetNumbers(params, "values")
	if !ok {
		return Failure("values array required")
	}

	x, err := fit.FromSample(values)
	if err != nil {
		return Failure(err.Error())
	}

	data := intervalData(x)
	data["count"] = len(values)
	return Success(data)
}

// fitQuantiles estimates an interval from empirical quantiles
func (p *Provider) fitQuantiles(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	values, ok := GetNumbers(params, "values")
	if !ok {
		return Failure("values array required")
	}

	lo := 0.05
	if v, ok := GetNumber(params, "lo"); ok {
		lo = v
	}
	hi := 0.95
	if v, ok := GetNumber(params, "hi"); ok {
		hi = v
	}

	x, err := fit.FromQuantiles(values, lo, hi)
	if err != nil {
		return Failure(err.Error())
	}

	data := intervalData(x)
	data["count"] = len(values)
	data["quantiles"] = []float64{lo, hi}
	return Success(data)
}
