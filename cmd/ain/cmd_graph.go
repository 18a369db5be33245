package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/asymintervals/scenario"
)

func runGraph(cmd *cobra.Command, args []string) error {
	s, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	g, err := s.BuildGraph()
	if err != nil {
		return err
	}

	if graphOut != "" {
		dot, err := g.DOT()
		if err != nil {
			return err
		}
		if err := os.WriteFile(graphOut, []byte(dot), 0o644); err != nil {
			return err
		}
	}

	switch {
	case jsonOut:
		payload := map[string]interface{}{
			"name":      s.Name,
			"directed":  g.Directed(),
			"num_nodes": g.NumNodes(),
			"num_edges": g.NumEdges(),
			"nodes":     g.Nodes(),
			"edges":     g.Edges(),
		}
		// Only undirected graphs with comparable pairs carry these.
		if u, err := g.AverageUncertainty(); err == nil {
			payload["average_uncertainty"] = u
		}
		if h, err := g.Entropy(); err == nil {
			payload["entropy"] = h
		}
		return printJSON(cmd, payload)
	case graphDOT:
		dot, err := g.DOT()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dot)
		return nil
	default:
		fmt.Fprintln(cmd.OutOrStdout(), g.Summary())
		return nil
	}
}
