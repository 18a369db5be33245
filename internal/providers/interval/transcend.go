package interval

import (
	"context"

	"github.com/GriffinCanCode/asymintervals/ain"
	"github.com/GriffinCanCode/asymintervals/internal/service"
)

// unary runs a one-operand operation on the interval in x.
func (p *Provider) unary(params map[string]interface{}, op func(ain.AIN) (ain.AIN, error)) (*service.Result, error) {
	x, err := GetInterval(params, "x")
	if err != nil {
		return Failure(err.Error())
	}
	out, err := op(x)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(intervalData(out))
}

// log takes the natural logarithm
func (p *Provider) log(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.unary(params, func(x ain.AIN) (ain.AIN, error) { return x.Log() })
}

// log2 takes the base-2 logarithm
func (p *Provider) log2(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.unary(params, func(x ain.AIN) (ain.AIN, error) { return x.Log2() })
}

// log10 takes the base-10 logarithm
func (p *Provider) log10(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.unary(params, func(x ain.AIN) (ain.AIN, error) { return x.Log10() })
}

// exp raises e to the interval
func (p *Provider) exp(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.unary(params, func(x ain.AIN) (ain.AIN, error) { return x.Exp() })
}

// sin takes the sine
func (p *Provider) sin(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.unary(params, func(x ain.AIN) (ain.AIN, error) { return x.Sin() })
}

// cos takes the cosine
func (p *Provider) cos(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.unary(params, func(x ain.AIN) (ain.AIN, error) { return x.Cos() })
}

// tan takes the tangent
func (p *Provider) tan(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.unary(params, func(x ain.AIN) (ain.AIN, error) { return x.Tan() })
}

// rpow raises a scalar base to an interval exponent
func (p *Provider) rpow(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	base, ok := GetNumber(params, "base")
	if !ok {
		return Failure("base parameter required")
	}
	return p.unary(params, func(x ain.AIN) (ain.AIN, error) { return ain.Rpow(base, x) })
}
