package interval

import (
	"context"
	"errors"

	"github.com/GriffinCanCode/asymintervals/ain"
	"github.com/GriffinCanCode/asymintervals/internal/service"
)

var errAtLeastOneInterval = errors.New("at least one operand must be an interval")

// relationOperands normalizes a and b so the interval side carries the
// evaluation. mirrored reports that the operands were swapped, which
// flips asymmetric relations.
func relationOperands(params map[string]interface{}) (x ain.AIN, o ain.Operand, mirrored bool, err error) {
	a, err := GetOperand(params, "a")
	if err != nil {
		return ain.AIN{}, nil, false, err
	}
	b, err := GetOperand(params, "b")
	if err != nil {
		return ain.AIN{}, nil, false, err
	}

	if v, ok := a.(ain.AIN); ok {
		return v, b, false, nil
	}
	if v, ok := b.(ain.AIN); ok {
		return v, a, true, nil
	}
	return ain.AIN{}, nil, false, errAtLeastOneInterval
}

// relation evaluates one order probability between a and b.
func (p *Provider) relation(params map[string]interface{},
	eval func(ain.AIN, ain.Operand) (float64, error),
	flipped func(ain.AIN, ain.Operand) (float64, error),
) (*service.Result, error) {
	x, o, mirrored, err := relationOperands(params)
	if err != nil {
		return Failure(err.Error())
	}

	var prob float64
	if mirrored {
		prob, err = flipped(x, o)
	} else {
		prob, err = eval(x, o)
	}
	if err != nil {
		return Failure(err.Error())
	}

	return Success(map[string]interface{}{"result": prob})
}

// gt computes the probability that a exceeds b
func (p *Provider) gt(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.relation(params,
		func(x ain.AIN, o ain.Operand) (float64, error) { return x.Gt(o) },
		func(x ain.AIN, o ain.Operand) (float64, error) { return x.Lt(o) },
	)
}

// ge computes the probability that a is at least b
func (p *Provider) ge(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.relation(params,
		func(x ain.AIN, o ain.Operand) (float64, error) { return x.Ge(o) },
		func(x ain.AIN, o ain.Operand) (float64, error) { return x.Le(o) },
	)
}

// lt computes the probability that a falls below b
func (p *Provider) lt(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.relation(params,
		func(x ain.AIN, o ain.Operand) (float64, error) { return x.Lt(o) },
		func(x ain.AIN, o ain.Operand) (float64, error) { return x.Gt(o) },
	)
}

// le computes the probability that a is at most b
func (p *Provider) le(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.relation(params,
		func(x ain.AIN, o ain.Operand) (float64, error) { return x.Le(o) },
		func(x ain.AIN, o ain.Operand) (float64, error) { return x.Ge(o) },
	)
}

// eq computes the probability that a and b coincide
func (p *Provider) eq(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.relation(params,
		func(x ain.AIN, o ain.Operand) (float64, error) { return x.Eq(o) },
		func(x ain.AIN, o ain.Operand) (float64, error) { return x.Eq(o) },
	)
}

// compare reports all five order probabilities between a and b
func (p *Provider) compare(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	x, o, mirrored, err := relationOperands(params)
	if err != nil {
		return Failure(err.Error())
	}

	gt, err := x.Gt(o)
	if err != nil {
		return Failure(err.Error())
	}
	ge, err := x.Ge(o)
	if err != nil {
		return Failure(err.Error())
	}
	lt, err := x.Lt(o)
	if err != nil {
		return Failure(err.Error())
	}
	le, err := x.Le(o)
	if err != nil {
		return Failure(err.Error())
	}
	eq, err := x.Eq(o)
	if err != nil {
		return Failure(err.Error())
	}

	if mirrored {
		gt, lt = lt, gt
		ge, le = le, ge
	}

	return Success(map[string]interface{}{
		"gt": gt,
		"ge": ge,
		"lt": lt,
		"le": le,
		"eq": eq,
	})
}
