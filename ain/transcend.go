package ain

import (
	"fmt"
	"math"
)

// containsPhase reports whether phase + k*period falls inside
// [lower, upper] for some integer k. Touching either bound counts.
func containsPhase(lower, upper, phase, period float64) bool {
	kMin := math.Ceil((lower - phase) / period)
	kMax := math.Floor((upper - phase) / period)
	return kMin <= kMax
}

// Log returns the natural logarithm of the interval. The lower bound
// must be strictly positive. The expected value integrates ln against
// the density using the antiderivative x*ln(x) - x.
func (a AIN) Log() (AIN, error) {
	if a.lower <= 0 {
		return AIN{}, fmt.Errorf("%w: log of %s with non-positive lower bound", ErrDomain, a)
	}
	if a.IsDegenerate() {
		v := math.Log(a.expected)
		return New(v, v, v)
	}
	f := func(x float64) float64 { return x*math.Log(x) - x }
	expected := a.alpha*(f(a.expected)-f(a.lower)) + a.beta*(f(a.upper)-f(a.expected))
	return New(math.Log(a.lower), math.Log(a.upper), expected)
}

// Log2 returns the base-2 logarithm, the natural logarithm scaled by
// 1/ln(2).
func (a AIN) Log2() (AIN, error) {
	l, err := a.Log()
	if err != nil {
		return AIN{}, err
	}
	return l.Mul(Scalar(math.Log2E))
}

// Log10 returns the base-10 logarithm, the natural logarithm scaled by
// 1/ln(10).
func (a AIN) Log10() (AIN, error) {
	l, err := a.Log()
	if err != nil {
		return AIN{}, err
	}
	return l.Mul(Scalar(math.Log10E))
}

// Exp returns e raised to the interval. The receiver must be
// non-degenerate.
func (a AIN) Exp() (AIN, error) {
	if a.IsDegenerate() {
		return AIN{}, fmt.Errorf("%w: exp of degenerate %s", ErrDomain, a)
	}
	expected := a.alpha*(math.Exp(a.expected)-math.Exp(a.lower)) +
		a.beta*(math.Exp(a.upper)-math.Exp(a.expected))
	return New(math.Exp(a.lower), math.Exp(a.upper), expected)
}

// Sin returns the sine of the interval. Bounds take interior extrema
// into account: every peak at pi/2 + 2k*pi inside the interval
// contributes +1 and every trough at -pi/2 + 2k*pi contributes -1,
// alongside the endpoint images.
func (a AIN) Sin() (AIN, error) {
	if a.IsDegenerate() {
		v := math.Sin(a.expected)
		return New(v, v, v)
	}
	candidates := []float64{math.Sin(a.lower), math.Sin(a.upper)}
	if containsPhase(a.lower, a.upper, math.Pi/2, 2*math.Pi) {
		candidates = append(candidates, 1)
	}
	if containsPhase(a.lower, a.upper, -math.Pi/2, 2*math.Pi) {
		candidates = append(candidates, -1)
	}
	lo, hi := minMax(candidates...)
	expected := a.alpha*(math.Cos(a.lower)-math.Cos(a.expected)) +
		a.beta*(math.Cos(a.expected)-math.Cos(a.upper))
	return New(lo, hi, expected)
}

// Cos returns the cosine of the interval. Peaks sit at 2k*pi and
// troughs at pi + 2k*pi; any inside the interval join the endpoint
// images as bound candidates.
func (a AIN) Cos() (AIN, error) {
	if a.IsDegenerate() {
		v := math.Cos(a.expected)
		return New(v, v, v)
	}
	candidates := []float64{math.Cos(a.lower), math.Cos(a.upper)}
	if containsPhase(a.lower, a.upper, 0, 2*math.Pi) {
		candidates = append(candidates, 1)
	}
	if containsPhase(a.lower, a.upper, math.Pi, 2*math.Pi) {
		candidates = append(candidates, -1)
	}
	lo, hi := minMax(candidates...)
	expected := a.alpha*(math.Sin(a.expected)-math.Sin(a.lower)) +
		a.beta*(math.Sin(a.upper)-math.Sin(a.expected))
	return New(lo, hi, expected)
}

// Tan returns the tangent of the interval. The interval must not
// contain or touch an asymptote at pi/2 + k*pi; between asymptotes tan
// is monotonic, so the bounds are the endpoint images.
func (a AIN) Tan() (AIN, error) {
	if containsPhase(a.lower, a.upper, math.Pi/2, math.Pi) {
		return AIN{}, fmt.Errorf("%w: tan of %s containing an asymptote", ErrDomain, a)
	}
	if a.IsDegenerate() {
		v := math.Tan(a.expected)
		return New(v, v, v)
	}
	g := func(x float64) float64 { return -math.Log(math.Abs(math.Cos(x))) }
	expected := a.alpha*(g(a.expected)-g(a.lower)) + a.beta*(g(a.upper)-g(a.expected))
	return New(math.Tan(a.lower), math.Tan(a.upper), expected)
}

// Rpow returns base raised to the interval x. The base must be
// positive and not 1; a base below 1 reverses the bound order.
func Rpow(base float64, x AIN) (AIN, error) {
	if base <= 0 || base == 1 {
		return AIN{}, fmt.Errorf("%w: exponential base %g", ErrDomain, base)
	}
	if x.IsDegenerate() {
		v := math.Pow(base, x.expected)
		return New(v, v, v)
	}
	lo, hi := minMax(math.Pow(base, x.lower), math.Pow(base, x.upper))
	expected := (x.alpha*(math.Pow(base, x.expected)-math.Pow(base, x.lower)) +
		x.beta*(math.Pow(base, x.upper)-math.Pow(base, x.expected))) / math.Log(base)
	return New(lo, hi, expected)
}
