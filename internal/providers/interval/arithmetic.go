package interval

import (
	"context"

	"github.com/GriffinCanCode/asymintervals/ain"
	"github.com/GriffinCanCode/asymintervals/internal/service"
)

// binary runs a two-operand operation. At least one operand must be an
// interval; a scalar left operand routes through the reversed form.
func (p *Provider) binary(params map[string]interface{},
	fwd func(ain.AIN, ain.Operand) (ain.AIN, error),
	rev func(float64, ain.AIN) (ain.AIN, error),
) (*service.Result, error) {
	a, err := GetOperand(params, "a")
	if err != nil {
		return Failure(err.Error())
	}
	b, err := GetOperand(params, "b")
	if err != nil {
		return Failure(err.Error())
	}

	var out ain.AIN
	switch x := a.(type) {
	case ain.AIN:
		out, err = fwd(x, b)
	case ain.Scalar:
		y, ok := b.(ain.AIN)
		if !ok {
			return Failure("at least one operand must be an interval")
		}
		out, err = rev(float64(x), y)
	}
	if err != nil {
		return Failure(err.Error())
	}

	return Success(intervalData(out))
}

// add adds two operands
func (p *Provider) add(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.binary(params,
		func(x ain.AIN, o ain.Operand) (ain.AIN, error) { return x.Add(o) },
		func(s float64, y ain.AIN) (ain.AIN, error) { return y.Add(ain.Scalar(s)) },
	)
}

// subtract subtracts b from a
func (p *Provider) subtract(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.binary(params,
		func(x ain.AIN, o ain.Operand) (ain.AIN, error) { return x.Sub(o) },
		ain.Rsub,
	)
}

// multiply multiplies two operands
func (p *Provider) multiply(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.binary(params,
		func(x ain.AIN, o ain.Operand) (ain.AIN, error) { return x.Mul(o) },
		func(s float64, y ain.AIN) (ain.AIN, error) { return y.Mul(ain.Scalar(s)) },
	)
}

// divide divides a by b
func (p *Provider) divide(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.binary(params,
		func(x ain.AIN, o ain.Operand) (ain.AIN, error) { return x.Div(o) },
		ain.Rdiv,
	)
}

// power raises a to the power of b
func (p *Provider) power(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.binary(params,
		func(x ain.AIN, o ain.Operand) (ain.AIN, error) { return x.Pow(o) },
		ain.Rpow,
	)
}

// negate mirrors an interval about zero
func (p *Provider) negate(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.unary(params, func(x ain.AIN) (ain.AIN, error) { return x.Neg() })
}
