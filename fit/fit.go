// Package fit estimates asymmetric interval numbers from empirical
// observations.
package fit

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/GriffinCanCode/asymintervals/ain"
)

// interiorPad keeps a fitted expected value off the bounds so the
// result always constructs.
const interiorPad = 1e-9

// clampInterior pulls v strictly inside (lo, hi).
func clampInterior(lo, hi, v float64) float64 {
	pad := (hi - lo) * interiorPad
	return math.Min(math.Max(v, lo+pad), hi-pad)
}

// FromSample fits an AIN to raw observations: bounds from the sample
// extremes, expected value from the sample mean. Constant samples
// collapse to a point mass.
func FromSample(xs []float64) (ain.AIN, error) {
	if len(xs) == 0 {
		return ain.AIN{}, fmt.Errorf("%w: no observations", ain.ErrValidation)
	}
	lo := floats.Min(xs)
	hi := floats.Max(xs)
	if hi-lo < 1e-14 {
		return ain.New(lo, hi, lo)
	}
	return ain.New(lo, hi, clampInterior(lo, hi, stat.Mean(xs, nil)))
}

// FromQuantiles fits an AIN whose bounds are the empirical lo and hi
// quantiles of the observations, which tames outliers that FromSample
// would absorb into the support. The expected value is the sample mean
// clamped inside the bounds. Needs at least two observations and
// 0 <= lo < hi <= 1.
func FromQuantiles(xs []float64, lo, hi float64) (ain.AIN, error) {
	if len(xs) < 2 {
		return ain.AIN{}, fmt.Errorf("%w: need at least 2 observations, got %d", ain.ErrValidation, len(xs))
	}
	if lo < 0 || hi > 1 || lo >= hi {
		return ain.AIN{}, fmt.Errorf("%w: quantile bounds [%g, %g]", ain.ErrRange, lo, hi)
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	lower := stat.Quantile(lo, stat.Empirical, sorted, nil)
	upper := stat.Quantile(hi, stat.Empirical, sorted, nil)
	if upper-lower < 1e-14 {
		return ain.New(lower, upper, lower)
	}
	return ain.New(lower, upper, clampInterior(lower, upper, stat.Mean(xs, nil)))
}
