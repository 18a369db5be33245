// Package ain implements Asymmetric Interval Numbers: bounded quantities
// with a two-piece uniform probability density used to propagate
// uncertainty through arithmetic and transcendental computation.
//
// An AIN is described by three numbers, lower <= expected <= upper. Its
// density is the constant alpha on [lower, expected) and the constant
// beta on [expected, upper), chosen so the total mass is 1 and the mean
// equals expected. Every operation returns a freshly constructed value;
// nothing is mutated, so AINs are safe to share across goroutines.
//
// Binary operations accept an Operand, which is either a Scalar or
// another AIN. Operations that combine two AINs derive the new expected
// value by integrating the operator against the density (the Law of the
// Unconscious Statistician), not by transforming endpoints alone.
// Comparisons return probabilities rather than booleans: Gt(x, y) is
// P(X > Y) for independent X and Y distributed per their densities.
//
// All failures wrap one of the sentinel errors ErrValidation, ErrDomain,
// ErrComplexResult, ErrRange and are detectable with errors.Is.
package ain
