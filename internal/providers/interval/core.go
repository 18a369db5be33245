package interval

import (
	"context"

	"github.com/GriffinCanCode/asymintervals/ain"
	"github.com/GriffinCanCode/asymintervals/internal/service"
)

// create constructs an interval from bounds and an optional expected value
func (p *Provider) create(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	lower, ok := GetNumber(params, "lower")
	if !ok {
		return Failure("lower parameter required")
	}
	upper, ok := GetNumber(params, "upper")
	if !ok {
		return Failure("upper parameter required")
	}

	var (
		x   ain.AIN
		err error
	)
	if expected, ok := GetNumber(params, "expected"); ok {
		x, err = ain.New(lower, upper, expected)
	} else {
		x, err = ain.NewMidpoint(lower, upper)
	}
	if err != nil {
		return Failure(err.Error())
	}

	return Success(intervalData(x))
}

// describe reports the derived statistics of an interval
func (p *Provider) describe(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	x, err := GetInterval(params, "interval")
	if err != nil {
		return Failure(err.Error())
	}

	precision := 4
	if v, ok := GetInt(params, "precision"); ok {
		precision = v
	}
	summary, err := x.Summary(precision)
	if err != nil {
		return Failure(err.Error())
	}

	return Success(map[string]interface{}{
		"interval":   []float64{x.Lower(), x.Upper(), x.Expected()},
		"lower":      x.Lower(),
		"upper":      x.Upper(),
		"expected":   x.Expected(),
		"alpha":      x.Alpha(),
		"beta":       x.Beta(),
		"asymmetry":  x.Asymmetry(),
		"variance":   x.Variance(),
		"std_dev":    x.StdDev(),
		"midpoint":   x.Midpoint(),
		"width":      x.Width(),
		"degenerate": x.IsDegenerate(),
		"summary":    summary,
	})
}
