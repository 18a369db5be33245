package ain

import (
	"fmt"
	"math/rand"
)

// PDF evaluates the probability density at x: alpha on
// [lower, expected), beta on [expected, upper), zero elsewhere.
func (a AIN) PDF(x float64) float64 {
	switch {
	case x < a.lower:
		return 0
	case x < a.expected:
		return a.alpha
	case x < a.upper:
		return a.beta
	default:
		return 0
	}
}

// CDF evaluates the cumulative distribution at x. It is 0 below lower,
// 1 at and above upper, and piecewise linear in between with a kink at
// the expected value.
func (a AIN) CDF(x float64) float64 {
	switch {
	case x < a.lower:
		return 0
	case x < a.expected:
		return a.alpha * (x - a.lower)
	case x < a.upper:
		return a.alpha*(a.expected-a.lower) + a.beta*(x-a.expected)
	default:
		return 1
	}
}

// Quantile returns the x with CDF(x) = p for p in [0, 1], splitting at
// the cumulative mass held by the lower piece. A degenerate interval
// maps every p to the expected value.
func (a AIN) Quantile(p float64) (float64, error) {
	if !(p >= 0 && p <= 1) {
		return 0, fmt.Errorf("%w: probability %g not in [0, 1]", ErrRange, p)
	}
	if a.IsDegenerate() {
		return a.expected, nil
	}
	t := a.alpha * (a.expected - a.lower)
	if p < t {
		return a.lower + p/a.alpha, nil
	}
	return a.expected + (p-t)/a.beta, nil
}

// Rand draws one value distributed per the density by inverting the
// CDF at a uniform variate from rng, or from the shared global source
// when rng is nil.
func (a AIN) Rand(rng *rand.Rand) float64 {
	var p float64
	if rng == nil {
		p = rand.Float64()
	} else {
		p = rng.Float64()
	}
	v, _ := a.Quantile(p) // Float64 stays inside [0, 1)
	return v
}

// Sample draws n values with Rand. n must not be negative.
func (a AIN) Sample(n int, rng *rand.Rand) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: sample size %d", ErrRange, n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = a.Rand(rng)
	}
	return out, nil
}
