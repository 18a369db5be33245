// Package main is the ain command line tool.
//
// It operates on asymmetric interval numbers locally, with no server
// dependency:
//   - summary: shape parameters, variance, asymmetry of one interval
//   - compare: order relation probabilities between two intervals
//   - dist: Wasserstein distances (W1, W2, Winf)
//   - sample: random draws, plain or CSV
//   - fit: estimate an interval from observed values in a CSV file
//   - graph: build a comparison graph from a scenario file
//   - plot: render density or distribution curves to PNG
//
// Every command accepts --json for machine-readable output.
package main
