package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ain",
	Short: "Asymmetric interval number toolbox",
	Long: `ain works with asymmetric interval numbers: closed intervals
carrying an expected value that need not sit at the midpoint.

Intervals are written as "lower,upper" or "lower,upper,expected":

  ain summary 0 10 2
  ain compare 0,10,2 2,8,5
  ain dist 0,10,5 2,12,7 --metric w1
  ain sample 0,10,2 --count 5 --seed 42
  ain fit samples.csv
  ain graph scenario.yaml --dot
  ain plot 0,10,2 --out pdf.png`,
	SilenceUsage: true,
}

func main() {
	// Cobra prints the error; just set the exit code.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
