// Package scenario loads and saves named collections of asymmetric
// interval numbers, the input format shared by the CLI, the service
// and the graph builder. Scenarios round-trip through YAML, TOML and
// JSON, chosen by file extension.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/asymintervals/ain"
	"github.com/GriffinCanCode/asymintervals/graph"
)

// Interval is one named entry. A nil Expected defaults to the
// midpoint.
type Interval struct {
	Name     string   `json:"name" yaml:"name" toml:"name"`
	Lower    float64  `json:"lower" yaml:"lower" toml:"lower"`
	Upper    float64  `json:"upper" yaml:"upper" toml:"upper"`
	Expected *float64 `json:"expected,omitempty" yaml:"expected,omitempty" toml:"expected,omitempty"`
}

// Scenario names a set of intervals plus how to weave them into a
// graph. Mode is one of "undirected" (default when empty), "directed"
// or "dominance".
type Scenario struct {
	Name          string     `json:"name" yaml:"name" toml:"name"`
	Mode          string     `json:"mode,omitempty" yaml:"mode,omitempty" toml:"mode,omitempty"`
	EdgeThreshold float64    `json:"edge_threshold,omitempty" yaml:"edge_threshold,omitempty" toml:"edge_threshold,omitempty"`
	Intervals     []Interval `json:"intervals" yaml:"intervals" toml:"intervals"`
}

// Load reads a scenario from path, picking the codec by extension:
// .yaml/.yml, .toml or .json.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	case ".toml":
		err = toml.Unmarshal(data, &s)
	case ".json":
		err = sonic.Unmarshal(data, &s)
	default:
		return nil, fmt.Errorf("unsupported scenario format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	return &s, nil
}

// Save writes the scenario to path with the codec matching its
// extension.
func (s *Scenario) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(s)
	case ".toml":
		data, err = toml.Marshal(s)
	case ".json":
		data, err = sonic.Marshal(s)
	default:
		return fmt.Errorf("unsupported scenario format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// value validates one entry into an AIN.
func (iv Interval) value() (ain.AIN, error) {
	if iv.Expected == nil {
		return ain.NewMidpoint(iv.Lower, iv.Upper)
	}
	return ain.New(iv.Lower, iv.Upper, *iv.Expected)
}

// Build validates every interval and returns them by name.
func (s *Scenario) Build() (map[string]ain.AIN, error) {
	out := make(map[string]ain.AIN, len(s.Intervals))
	for _, iv := range s.Intervals {
		x, err := iv.value()
		if err != nil {
			return nil, fmt.Errorf("interval %q: %w", iv.Name, err)
		}
		out[iv.Name] = x
	}
	return out, nil
}

// GraphConfig maps the scenario mode onto a graph configuration.
func (s *Scenario) GraphConfig() (graph.Config, error) {
	cfg := graph.Config{EdgeThreshold: s.EdgeThreshold}
	switch strings.ToLower(s.Mode) {
	case "", "undirected":
	case "directed":
		cfg.Directed = true
	case "dominance":
		cfg.Directed = true
		cfg.DominanceOnly = true
	default:
		return graph.Config{}, fmt.Errorf("unknown graph mode %q", s.Mode)
	}
	return cfg, nil
}

// BuildGraph assembles the weighted graph with nodes added in file
// order.
func (s *Scenario) BuildGraph() (*graph.Graph, error) {
	cfg, err := s.GraphConfig()
	if err != nil {
		return nil, err
	}
	g, err := graph.New(cfg)
	if err != nil {
		return nil, err
	}
	for _, iv := range s.Intervals {
		x, err := iv.value()
		if err != nil {
			return nil, fmt.Errorf("interval %q: %w", iv.Name, err)
		}
		if err := g.AddNode(iv.Name, x); err != nil {
			return nil, err
		}
	}
	return g, nil
}
