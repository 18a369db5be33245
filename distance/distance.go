// Package distance measures how far apart two asymmetric interval
// numbers are in Wasserstein terms. The difference of the two quantile
// functions is piecewise affine, so the order-1, order-2 and order-inf
// distances all reduce to closed forms over at most three segments.
package distance

import (
	"math"

	"github.com/GriffinCanCode/asymintervals/ain"
	"gonum.org/v1/gonum/mat"
)

// segment is the affine map a + b*p for p in [start, end], one piece
// of the quantile difference Q_X - Q_Y.
type segment struct {
	start float64
	end   float64
	a     float64
	b     float64
}

// segments decomposes Q_X - Q_Y at the operands' cumulative
// breakpoints. When both breakpoints are interior they are visited in
// ascending order; swapping the operands to achieve that only flips
// the sign of the difference, which none of the metrics observe.
func segments(x, y ain.AIN) []segment {
	xDeg, yDeg := x.IsDegenerate(), y.IsDegenerate()

	switch {
	case xDeg && yDeg:
		return []segment{{start: 0, end: 1, a: x.Expected() - y.Expected(), b: 0}}
	case xDeg:
		t := y.Alpha() * (y.Expected() - y.Lower())
		return []segment{
			{start: 0, end: t, a: x.Expected() - y.Lower(), b: -1 / y.Alpha()},
			{start: t, end: 1, a: x.Expected() - y.Expected() + t/y.Beta(), b: -1 / y.Beta()},
		}
	case yDeg:
		t := x.Alpha() * (x.Expected() - x.Lower())
		return []segment{
			{start: 0, end: t, a: x.Lower() - y.Expected(), b: 1 / x.Alpha()},
			{start: t, end: 1, a: x.Expected() - y.Expected() - t/x.Beta(), b: 1 / x.Beta()},
		}
	}

	t1 := x.Alpha() * (x.Expected() - x.Lower())
	t2 := y.Alpha() * (y.Expected() - y.Lower())
	if t1 > t2 {
		x, y = y, x
		t1, t2 = t2, t1
	}
	return []segment{
		{
			start: 0, end: t1,
			a: x.Lower() - y.Lower(),
			b: 1/x.Alpha() - 1/y.Alpha(),
		},
		{
			start: t1, end: t2,
			a: x.Expected() - y.Lower() - t1/x.Beta(),
			b: 1/x.Beta() - 1/y.Alpha(),
		},
		{
			start: t2, end: 1,
			a: x.Expected() - y.Expected() - t1/x.Beta() + t2/y.Beta(),
			b: 1/x.Beta() - 1/y.Beta(),
		},
	}
}

// absIntegral integrates |a + b*p| over [start, end], splitting at the
// zero crossing when the sign changes inside the segment.
func (s segment) absIntegral() float64 {
	lo := s.a + s.b*s.start
	hi := s.a + s.b*s.end
	if lo*hi >= 0 {
		return math.Abs(s.a*(s.end-s.start) + s.b/2*(s.end*s.end-s.start*s.start))
	}
	q0 := -s.a / s.b
	left := s.a*(q0-s.start) + s.b/2*(q0*q0-s.start*s.start)
	right := s.a*(s.end-q0) + s.b/2*(s.end*s.end-q0*q0)
	return math.Abs(left) + math.Abs(right)
}

// sqIntegral integrates (a + b*p)^2 over [start, end].
func (s segment) sqIntegral() float64 {
	return s.a*s.a*(s.end-s.start) +
		s.a*s.b*(s.end*s.end-s.start*s.start) +
		s.b*s.b/3*(s.end*s.end*s.end-s.start*s.start*s.start)
}

// W1 returns the order-1 Wasserstein distance, the integral of the
// absolute quantile difference.
func W1(x, y ain.AIN) float64 {
	total := 0.0
	for _, s := range segments(x, y) {
		total += s.absIntegral()
	}
	return total
}

// W2 returns the order-2 Wasserstein distance, the root of the
// integrated squared quantile difference.
func W2(x, y ain.AIN) float64 {
	total := 0.0
	for _, s := range segments(x, y) {
		total += s.sqIntegral()
	}
	return math.Sqrt(total)
}

// WInf returns the order-infinity distance, the largest absolute
// quantile difference. The difference is affine between breakpoints,
// so only the endpoints and the interior breakpoints can attain it.
func WInf(x, y ain.AIN) float64 {
	best := math.Max(
		math.Abs(x.Lower()-y.Lower()),
		math.Abs(x.Upper()-y.Upper()),
	)
	segs := segments(x, y)
	for _, s := range segs[1:] {
		best = math.Max(best, math.Abs(s.a+s.b*s.start))
	}
	return best
}

// Metric is a distance between two AINs.
type Metric func(x, y ain.AIN) float64

// Matrix returns the symmetric pairwise distance matrix of items under
// the given metric.
func Matrix(items []ain.AIN, metric Metric) *mat.Dense {
	n := len(items)
	if n == 0 {
		return &mat.Dense{}
	}
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := metric(items[i], items[j])
			m.Set(i, j, v)
			m.Set(j, i, v)
		}
	}
	return m
}
