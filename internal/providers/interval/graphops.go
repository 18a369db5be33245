package interval

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/asymintervals/internal/service"
	"github.com/GriffinCanCode/asymintervals/scenario"
)

// graphBuild assembles a pairwise comparison graph from named intervals
func (p *Provider) graphBuild(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	rawNodes, ok := params["nodes"].([]interface{})
	if !ok {
		return Failure("nodes array required")
	}
	if len(rawNodes) == 0 {
		return Failure("nodes array must not be empty")
	}

	// Node order is preserved: insertion order decides how undirected
	// edges are reported.
	entries := make([]scenario.Interval, 0, len(rawNodes))
	for i, raw := range rawNodes {
		node, ok := raw.(map[string]interface{})
		if !ok {
			return Failure(fmt.Sprintf("nodes[%d] must be an object", i))
		}
		name, ok := GetString(node, "name")
		if !ok || name == "" {
			return Failure(fmt.Sprintf("nodes[%d].name required", i))
		}
		x, err := toInterval(node["interval"], fmt.Sprintf("nodes[%d].interval", i))
		if err != nil {
			return Failure(err.Error())
		}
		expected := x.Expected()
		entries = append(entries, scenario.Interval{
			Name:     name,
			Lower:    x.Lower(),
			Upper:    x.Upper(),
			Expected: &expected,
		})
	}

	mode, _ := GetString(params, "mode")
	threshold, _ := GetNumber(params, "edge_threshold")

	s := scenario.Scenario{
		Mode:          mode,
		EdgeThreshold: threshold,
		Intervals:     entries,
	}
	g, err := s.BuildGraph()
	if err != nil {
		return Failure(err.Error())
	}

	edges := make([]map[string]interface{}, 0, g.NumEdges())
	for _, e := range g.Edges() {
		edges = append(edges, map[string]interface{}{
			"from":   e.From,
			"to":     e.To,
			"weight": e.Weight,
		})
	}

	dot, err := g.DOT()
	if err != nil {
		return Failure(err.Error())
	}

	data := map[string]interface{}{
		"nodes":     g.Nodes(),
		"edges":     edges,
		"num_nodes": g.NumNodes(),
		"num_edges": g.NumEdges(),
		"directed":  g.Directed(),
		"summary":   g.Summary(),
		"dot":       dot,
	}

	// Uncertainty metrics exist only for undirected graphs with at
	// least one comparable pair.
	if u, err := g.AverageUncertainty(); err == nil {
		data["average_uncertainty"] = u
	}
	if h, err := g.Entropy(); err == nil {
		data["entropy"] = h
	}

	return Success(data)
}
