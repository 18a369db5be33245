// Package interval exposes asymmetric interval operations as service
// tools under the "interval." prefix.
//
// Tool groups:
//   - core: create and describe intervals
//   - arithmetic: add, subtract, multiply, divide, power, negate
//   - transcendental: log, log2, log10, exp, sin, cos, tan
//   - distribution: pdf, cdf, quantile, sample
//   - comparison: gt, ge, lt, le, eq, compare
//   - dist: Wasserstein metrics and pairwise matrices
//   - fit: estimation from observations
//   - graph: pairwise comparison graphs
//
// Operands arrive as JSON values: an interval is a [lower, upper] or
// [lower, upper, expected] array, or an object with those fields.
// Binary tools accept a plain number on either side and route through
// the reversed operation when only the right side is an interval.
//
// Example Usage:
//
//	provider := interval.NewProvider(0)
//	result, err := provider.Execute(ctx, "interval.add", map[string]interface{}{
//		"a": []interface{}{0.0, 10.0, 2.0},
//		"b": 5.0,
//	})
package interval
