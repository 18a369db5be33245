package interval

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/GriffinCanCode/asymintervals/internal/service"
)

// pdf evaluates the probability density at a point
func (p *Provider) pdf(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	x, err := GetInterval(params, "interval")
	if err != nil {
		return Failure(err.Error())
	}
	at, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}

	return Success(map[string]interface{}{"result": x.PDF(at)})
}

// cdf evaluates the cumulative distribution at a point
func (p *Provider) cdf(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	x, err := GetInterval(params, "interval")
	if err != nil {
		return Failure(err.Error())
	}
	at, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}

	return Success(map[string]interface{}{"result": x.CDF(at)})
}

// quantile inverts the cumulative distribution at a probability
func (p *Provider) quantile(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	x, err := GetInterval(params, "interval")
	if err != nil {
		return Failure(err.Error())
	}
	prob, ok := GetNumber(params, "p")
	if !ok {
		return Failure("p parameter required")
	}

	q, err := x.Quantile(prob)
	if err != nil {
		return Failure(err.Error())
	}

	return Success(map[string]interface{}{"result": q})
}

// sample draws random values distributed per the interval density
func (p *Provider) sample(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	x, err := GetInterval(params, "interval")
	if err != nil {
		return Failure(err.Error())
	}
	count, ok := GetInt(params, "count")
	if !ok {
		return Failure("count parameter required")
	}
	if count <= 0 {
		return Failure("count must be positive")
	}
	if count > p.maxSamples {
		return Failure(fmt.Sprintf("count %d exceeds limit %d", count, p.maxSamples))
	}

	var rng *rand.Rand
	if seed, ok := GetInt(params, "seed"); ok {
		rng = rand.New(rand.NewSource(int64(seed)))
	}

	values, err := x.Sample(count, rng)
	if err != nil {
		return Failure(err.Error())
	}

	return Success(map[string]interface{}{
		"values": values,
		"count":  len(values),
	})
}
