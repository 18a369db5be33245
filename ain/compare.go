package ain

import (
	"fmt"
	"math"
)

// piece is one constant-density segment of an AIN seen through its
// CDF: it covers cumulative mass [lo, hi], starting at value q when
// the mass is lo, with density dens.
type piece struct {
	dens float64
	lo   float64
	hi   float64
	q    float64
}

// pieces splits the distribution at the expected value's cumulative
// mass.
func (a AIN) pieces() [2]piece {
	t := a.alpha * (a.expected - a.lower)
	return [2]piece{
		{dens: a.alpha, lo: 0, hi: t, q: a.lower},
		{dens: a.beta, lo: t, hi: 1, q: a.expected},
	}
}

// segIntegral computes the integral of max(0, r - max(z, s)) for z in
// [p, q], returning 0 when q <= p. The closed form depends on how the
// floor s and the cap r sit relative to [p, q]: no contribution,
// constant gap, triangular overlap clipped at r, or a mix split at s.
func segIntegral(p, q, r, s float64) float64 {
	if q <= p {
		return 0
	}
	if r <= s || r <= p {
		return 0
	}
	if q <= s {
		return (r - s) * (q - p)
	}
	if s <= p {
		if q <= r {
			return (q - p) * (2*r - p - q) / 2
		}
		return (r - p) * (r - p) / 2
	}
	t := math.Min(q, r)
	return (r-s)*(s-p) + (t-s)*(2*r-s-t)/2
}

// gtContinuous evaluates P(X > Y) for two non-degenerate operands by
// pushing Y's quantile function through X's CDF on each pair of
// density pieces and summing the resulting closed-form integrals.
func (a AIN) gtContinuous(y AIN) float64 {
	xs := a.pieces()
	ys := y.pieces()
	total := 0.0
	for _, xp := range xs {
		for _, yp := range ys {
			p := xp.lo + xp.dens*(yp.q-xp.q)
			q := xp.lo + xp.dens*(yp.q+(yp.hi-yp.lo)/yp.dens-xp.q)
			total += yp.dens / xp.dens * segIntegral(p, q, xp.hi, xp.lo)
		}
	}
	return total
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// Gt returns P(X > Y) for the receiver X and operand Y, treating the
// two as independent. A Scalar operand reduces to the survival
// function; a degenerate receiver reduces to an ordinary comparison of
// point values.
func (a AIN) Gt(o Operand) (float64, error) {
	switch y := o.(type) {
	case Scalar:
		v := float64(y)
		if a.IsDegenerate() {
			if a.expected > v {
				return 1, nil
			}
			return 0, nil
		}
		return 1 - a.CDF(v), nil
	case AIN:
		return a.gtAIN(y), nil
	default:
		return 0, fmt.Errorf("%w: unsupported operand %T", ErrRange, o)
	}
}

func (a AIN) gtAIN(y AIN) float64 {
	aDeg, yDeg := a.IsDegenerate(), y.IsDegenerate()
	switch {
	case aDeg && yDeg:
		if a.expected > y.expected {
			return 1
		}
		return 0
	case aDeg:
		return y.CDF(a.expected)
	case yDeg:
		return 1 - a.CDF(y.expected)
	case a.upper <= y.lower:
		return 0
	case y.upper <= a.lower:
		return 1
	}
	return clamp01(a.gtContinuous(y))
}

// Lt returns P(X < Y), the mirror of Gt.
func (a AIN) Lt(o Operand) (float64, error) {
	switch y := o.(type) {
	case Scalar:
		v := float64(y)
		if a.IsDegenerate() {
			if a.expected < v {
				return 1, nil
			}
			return 0, nil
		}
		return a.CDF(v), nil
	case AIN:
		return a.ltAIN(y), nil
	default:
		return 0, fmt.Errorf("%w: unsupported operand %T", ErrRange, o)
	}
}

func (a AIN) ltAIN(y AIN) float64 {
	switch {
	case a.IsDegenerate() && y.IsDegenerate():
		if a.expected < y.expected {
			return 1
		}
		return 0
	case y.IsDegenerate():
		return a.CDF(y.expected)
	default:
		return y.gtAIN(a)
	}
}

// Eq returns P(X == Y), which carries mass only when both sides are
// point values and coincide exactly.
func (a AIN) Eq(o Operand) (float64, error) {
	switch y := o.(type) {
	case Scalar:
		if a.IsDegenerate() && a.expected == float64(y) {
			return 1, nil
		}
		return 0, nil
	case AIN:
		if a.IsDegenerate() && y.IsDegenerate() && a.expected == y.expected {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: unsupported operand %T", ErrRange, o)
	}
}

// Ge returns P(X >= Y) as the larger of Gt and Eq; at most one of the
// two carries mass.
func (a AIN) Ge(o Operand) (float64, error) {
	gt, err := a.Gt(o)
	if err != nil {
		return 0, err
	}
	eq, err := a.Eq(o)
	if err != nil {
		return 0, err
	}
	return math.Max(gt, eq), nil
}

// Le returns P(X <= Y) as the larger of Lt and Eq.
func (a AIN) Le(o Operand) (float64, error) {
	lt, err := a.Lt(o)
	if err != nil {
		return 0, err
	}
	eq, err := a.Eq(o)
	if err != nil {
		return 0, err
	}
	return math.Max(lt, eq), nil
}
