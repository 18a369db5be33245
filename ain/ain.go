package ain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// degenTol is the width below which an interval collapses to a point
// mass. The same threshold drives construction, comparison, and the
// distance metrics so a value is never degenerate in one place and
// continuous in another.
const degenTol = 1e-14

// AIN is an asymmetric interval number: a random quantity supported on
// [lower, upper] with piecewise-constant density alpha on
// [lower, expected) and beta on [expected, upper). The derived fields
// are fixed at construction, so values are immutable and copyable.
type AIN struct {
	lower    float64
	upper    float64
	expected float64

	alpha     float64
	beta      float64
	asymmetry float64
	variance  float64
}

// New constructs an AIN from its bounds and expected value.
//
// For a proper interval the expected value must lie strictly inside
// (lower, upper). When upper-lower falls under the degeneracy
// threshold the three numbers may coincide and the result is a point
// mass with alpha = beta = 1, zero asymmetry and zero variance.
// Non-finite inputs are rejected with ErrValidation.
func New(lower, upper, expected float64) (AIN, error) {
	for _, v := range [3]float64{lower, upper, expected} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return AIN{}, fmt.Errorf("%w: non-finite value in [%g, %g]_{%g}", ErrValidation, lower, upper, expected)
		}
	}
	if lower > upper {
		return AIN{}, fmt.Errorf("%w: lower %g exceeds upper %g", ErrValidation, lower, upper)
	}
	if upper-lower < degenTol {
		if expected < lower || expected > upper {
			return AIN{}, fmt.Errorf("%w: expected %g outside [%g, %g]", ErrValidation, expected, lower, upper)
		}
		return AIN{lower: lower, upper: upper, expected: expected, alpha: 1, beta: 1}, nil
	}
	if expected <= lower || expected >= upper {
		return AIN{}, fmt.Errorf("%w: expected %g not strictly inside (%g, %g)", ErrValidation, expected, lower, upper)
	}

	width := upper - lower
	alpha := (upper - expected) / (width * (expected - lower))
	beta := (expected - lower) / (width * (upper - expected))
	variance := alpha*(expected*expected*expected-lower*lower*lower)/3 +
		beta*(upper*upper*upper-expected*expected*expected)/3 -
		expected*expected

	return AIN{
		lower:     lower,
		upper:     upper,
		expected:  expected,
		alpha:     alpha,
		beta:      beta,
		asymmetry: (lower + upper - 2*expected) / width,
		variance:  variance,
	}, nil
}

// NewMidpoint constructs the symmetric AIN whose expected value is the
// midpoint of [lower, upper].
func NewMidpoint(lower, upper float64) (AIN, error) {
	return New(lower, upper, (lower+upper)/2)
}

// Must returns a or panics if err is non-nil. It is intended for
// fixtures and package-level literals that are known to be valid.
func Must(a AIN, err error) AIN {
	if err != nil {
		panic(err)
	}
	return a
}

// Lower returns the lower bound.
func (a AIN) Lower() float64 { return a.lower }

// Upper returns the upper bound.
func (a AIN) Upper() float64 { return a.upper }

// Expected returns the expected value.
func (a AIN) Expected() float64 { return a.expected }

// Alpha returns the density on [lower, expected).
func (a AIN) Alpha() float64 { return a.alpha }

// Beta returns the density on [expected, upper).
func (a AIN) Beta() float64 { return a.beta }

// Asymmetry returns (lower + upper - 2*expected) / (upper - lower),
// which is 0 for a symmetric interval and approaches +1 or -1 as the
// expected value nears a bound. Degenerate intervals report 0.
func (a AIN) Asymmetry() float64 { return a.asymmetry }

// Variance returns the variance of the distribution.
func (a AIN) Variance() float64 { return a.variance }

// StdDev returns the standard deviation of the distribution.
func (a AIN) StdDev() float64 { return math.Sqrt(a.variance) }

// Midpoint returns (lower + upper) / 2.
func (a AIN) Midpoint() float64 { return (a.lower + a.upper) / 2 }

// Width returns upper - lower.
func (a AIN) Width() float64 { return a.upper - a.lower }

// IsDegenerate reports whether the interval is a point mass.
func (a AIN) IsDegenerate() bool { return a.upper-a.lower < degenTol }

// Equal reports exact equality of bounds and expected value.
func (a AIN) Equal(o AIN) bool {
	return a.lower == o.lower && a.upper == o.upper && a.expected == o.expected
}

// String renders the interval as [lower, upper]_{expected} with four
// decimal places.
func (a AIN) String() string {
	return fmt.Sprintf("[%.4f, %.4f]_{%.4f}", a.lower, a.upper, a.expected)
}

// Summary renders a framed, human-readable report of the interval and
// its derived statistics at the given decimal precision.
func (a AIN) Summary(precision int) (string, error) {
	if precision < 0 {
		return "", fmt.Errorf("%w: negative precision %d", ErrRange, precision)
	}

	rows := []struct {
		name  string
		value float64
	}{
		{"Alpha", a.alpha},
		{"Beta", a.beta},
		{"Asymmetry", a.asymmetry},
		{"Exp. val.", a.expected},
		{"Variance", a.variance},
		{"Std. dev.", a.StdDev()},
		{"Midpoint", a.Midpoint()},
	}

	vals := make([]string, len(rows))
	width := 0
	for i, r := range rows {
		vals[i] = strconv.FormatFloat(r.value, 'f', precision, 64)
		if len(vals[i]) > width {
			width = len(vals[i])
		}
	}
	width += 4

	var b strings.Builder
	fmt.Fprintf(&b, "=== AIN %s\n", strings.Repeat("=", 28))
	fmt.Fprintf(&b, "[%.*f, %.*f]_{%.*f}\n", precision, a.lower, precision, a.upper, precision, a.expected)
	fmt.Fprintf(&b, "=== Summary %s\n", strings.Repeat("=", 24))
	for i, r := range rows {
		fmt.Fprintf(&b, "%-12s = %*s\n", r.name, width, vals[i])
	}
	b.WriteString(strings.Repeat("=", 36))
	b.WriteByte('\n')
	return b.String(), nil
}
