package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/asymintervals/ainplot"
)

func runPlot(cmd *cobra.Command, args []string) error {
	x, err := parseInterval(args[0])
	if err != nil {
		return err
	}

	switch strings.ToLower(plotKind) {
	case "pdf":
		err = ainplot.SavePDF(x, plotOut, plotWidth, plotHeight)
	case "cdf":
		err = ainplot.SaveCDF(x, plotOut, plotWidth, plotHeight)
	default:
		return fmt.Errorf("unknown plot kind %q", plotKind)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", plotOut)
	return nil
}
