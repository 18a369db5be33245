package main

import "github.com/spf13/cobra"

var (
	jsonOut bool

	summaryPrecision int

	distMetric string

	sampleCount int
	sampleSeed  int64
	sampleCSV   bool

	fitColumn    int
	fitQuantiles bool
	fitLo        float64
	fitHi        float64

	graphDOT bool
	graphOut string

	plotKind   string
	plotOut    string
	plotWidth  float64
	plotHeight float64

	summaryCmd = &cobra.Command{
		Use:   "summary LOWER UPPER [EXPECTED]",
		Short: "Describe an interval: shape parameters, variance, asymmetry",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  runSummary, // Defined in cmd_interval.go
	}

	compareCmd = &cobra.Command{
		Use:   "compare A B",
		Short: "Probabilities of the order relations between two intervals",
		Args:  cobra.ExactArgs(2),
		RunE:  runCompare, // Defined in cmd_interval.go
	}

	distCmd = &cobra.Command{
		Use:   "dist A B",
		Short: "Wasserstein distance between two intervals",
		Args:  cobra.ExactArgs(2),
		RunE:  runDist, // Defined in cmd_interval.go
	}

	sampleCmd = &cobra.Command{
		Use:   "sample INTERVAL",
		Short: "Draw random values from an interval's distribution",
		Args:  cobra.ExactArgs(1),
		RunE:  runSample, // Defined in cmd_interval.go
	}

	fitCmd = &cobra.Command{
		Use:   "fit FILE",
		Short: "Estimate an interval from observed values in a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE:  runFit, // Defined in cmd_interval.go
	}

	graphCmd = &cobra.Command{
		Use:   "graph SCENARIO",
		Short: "Build a comparison graph from a scenario file",
		Long: `Build a weighted comparison graph from the named intervals in a
scenario file (.yaml, .toml or .json).

Undirected graphs connect comparable pairs weighted by order
probability; directed modes point edges toward the likely larger
interval. The default output is a text summary.

Examples:
  ain graph portfolio.yaml
  ain graph portfolio.yaml --dot
  ain graph portfolio.yaml --out portfolio.dot --json`,
		Args: cobra.ExactArgs(1),
		RunE: runGraph, // Defined in cmd_graph.go
	}

	plotCmd = &cobra.Command{
		Use:   "plot INTERVAL",
		Short: "Render an interval's density or distribution to PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot, // Defined in cmd_plot.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false,
		"Output as JSON for scripting")

	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().IntVar(&summaryPrecision, "precision", 4,
		"Digits after the decimal point")

	rootCmd.AddCommand(compareCmd)

	rootCmd.AddCommand(distCmd)
	distCmd.Flags().StringVar(&distMetric, "metric", "w2",
		"Distance metric: w1, w2, winf")

	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().IntVar(&sampleCount, "count", 10,
		"Number of samples to draw")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 0,
		"Random seed (0 = nondeterministic)")
	sampleCmd.Flags().BoolVar(&sampleCSV, "csv", false,
		"Emit index,value CSV instead of one value per line")

	rootCmd.AddCommand(fitCmd)
	fitCmd.Flags().IntVar(&fitColumn, "column", 0,
		"CSV column holding the values")
	fitCmd.Flags().BoolVar(&fitQuantiles, "quantiles", false,
		"Fit from empirical quantiles instead of sample bounds")
	fitCmd.Flags().Float64Var(&fitLo, "lo", 0.05,
		"Lower quantile level for --quantiles")
	fitCmd.Flags().Float64Var(&fitHi, "hi", 0.95,
		"Upper quantile level for --quantiles")

	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().BoolVar(&graphDOT, "dot", false,
		"Print Graphviz DOT instead of the summary")
	graphCmd.Flags().StringVar(&graphOut, "out", "",
		"Write DOT to a file")

	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVar(&plotKind, "kind", "pdf",
		"Plot kind: pdf or cdf")
	plotCmd.Flags().StringVar(&plotOut, "out", "",
		"Output PNG path (required)")
	plotCmd.Flags().Float64Var(&plotWidth, "width", 6,
		"Plot width in inches")
	plotCmd.Flags().Float64Var(&plotHeight, "height", 4,
		"Plot height in inches")
	plotCmd.MarkFlagRequired("out")
}
