// Package graph builds uncertainty graphs over named asymmetric
// interval numbers. Edge weights derive from the stochastic dominance
// probability P(u > v): directed graphs use it directly, undirected
// graphs use the symmetric uncertainty 4p(1-p), and dominance mode
// keeps only the stronger direction of each pair.
package graph

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"

	"github.com/GriffinCanCode/asymintervals/ain"
)

var (
	// ErrDuplicateNode reports an AddNode call reusing a name.
	ErrDuplicateNode = errors.New("node already exists")

	// ErrDirectedOnly reports dominance mode on an undirected graph.
	ErrDirectedOnly = errors.New("dominance mode requires a directed graph")

	// ErrUndirectedOnly reports an uncertainty metric requested on a
	// directed graph.
	ErrUndirectedOnly = errors.New("metric defined only for undirected graphs")
)

// Config selects the graph flavor. EdgeThreshold drops edges whose
// weight does not exceed it; DominanceOnly keeps only the stronger
// direction per node pair and requires Directed.
type Config struct {
	Directed      bool
	EdgeThreshold float64
	DominanceOnly bool
}

// Edge is one weighted edge. Undirected edges are reported once, from
// the earlier-inserted node.
type Edge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Graph holds the nodes in insertion order plus the weighted
// adjacency derived from their pairwise comparisons.
type Graph struct {
	cfg   Config
	names []string
	nodes map[string]ain.AIN
	adj   map[string]map[string]float64
}

// New validates cfg and returns an empty graph.
func New(cfg Config) (*Graph, error) {
	if cfg.EdgeThreshold < 0 || cfg.EdgeThreshold > 1 {
		return nil, fmt.Errorf("edge threshold %g not in [0, 1]", cfg.EdgeThreshold)
	}
	if cfg.DominanceOnly && !cfg.Directed {
		return nil, ErrDirectedOnly
	}
	return &Graph{
		cfg:   cfg,
		nodes: make(map[string]ain.AIN),
		adj:   make(map[string]map[string]float64),
	}, nil
}

// round4 reduces a weight to four decimals, matching the formatted
// precision edges are reported with.
func round4(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 4, 64), 64)
	return r
}

// AddNode inserts a named interval and connects it against every node
// already present.
func (g *Graph) AddNode(name string, x ain.AIN) error {
	if _, ok := g.nodes[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
	}
	g.nodes[name] = x
	g.names = append(g.names, name)

	for _, other := range g.names {
		if other == name {
			continue
		}
		var err error
		switch {
		case g.cfg.Directed && g.cfg.DominanceOnly:
			err = g.addDominantEdge(name, other)
		case g.cfg.Directed:
			if err = g.addDirectedEdge(name, other); err == nil {
				err = g.addDirectedEdge(other, name)
			}
		default:
			err = g.addUndirectedEdge(name, other)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// addDominantEdge keeps only the direction with the larger raw
// probability; a perfect tie goes from the lexicographically smaller
// name.
func (g *Graph) addDominantEdge(u, v string) error {
	pUV, err := g.nodes[u].Gt(g.nodes[v])
	if err != nil {
		return err
	}
	pVU, err := g.nodes[v].Gt(g.nodes[u])
	if err != nil {
		return err
	}

	src, dst, weight := u, v, pUV
	switch {
	case pUV > pVU:
	case pVU > pUV:
		src, dst, weight = v, u, pVU
	case u > v:
		src, dst = v, u
	}
	if weight > g.cfg.EdgeThreshold {
		g.setEdge(src, dst, weight)
	}
	return nil
}

func (g *Graph) addDirectedEdge(u, v string) error {
	p, err := g.nodes[u].Gt(g.nodes[v])
	if err != nil {
		return err
	}
	if w := round4(p); w > g.cfg.EdgeThreshold {
		g.setEdge(u, v, w)
	}
	return nil
}

func (g *Graph) addUndirectedEdge(u, v string) error {
	p, err := g.nodes[v].Gt(g.nodes[u])
	if err != nil {
		return err
	}
	if w := round4(4 * p * (1 - p)); w > g.cfg.EdgeThreshold {
		g.setEdge(u, v, w)
		g.setEdge(v, u, w)
	}
	return nil
}

func (g *Graph) setEdge(u, v string, w float64) {
	if g.adj[u] == nil {
		g.adj[u] = make(map[string]float64)
	}
	g.adj[u][v] = w
}

// Directed reports the graph flavor.
func (g *Graph) Directed() bool { return g.cfg.Directed }

// NumNodes returns the node count.
func (g *Graph) NumNodes() int { return len(g.names) }

// NumEdges returns the edge count, counting each undirected edge once.
func (g *Graph) NumEdges() int {
	total := 0
	for _, row := range g.adj {
		total += len(row)
	}
	if !g.cfg.Directed {
		total /= 2
	}
	return total
}

// Nodes returns the node names in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Node returns the interval stored under name.
func (g *Graph) Node(name string) (ain.AIN, bool) {
	x, ok := g.nodes[name]
	return x, ok
}

// EdgeWeight returns the weight of the edge from u to v.
func (g *Graph) EdgeWeight(u, v string) (float64, bool) {
	w, ok := g.adj[u][v]
	return w, ok
}

// Degree returns the number of edges touching the node; for directed
// graphs that is in-degree plus out-degree.
func (g *Graph) Degree(name string) int {
	deg := len(g.adj[name])
	if g.cfg.Directed {
		for _, row := range g.adj {
			if _, ok := row[name]; ok {
				deg++
			}
		}
	}
	return deg
}

// Edges lists the edges: directed graphs group by source in insertion
// order, undirected graphs report each pair once.
func (g *Graph) Edges() []Edge {
	var out []Edge
	if g.cfg.Directed {
		for _, u := range g.names {
			for _, v := range g.names {
				if u == v {
					continue
				}
				if w, ok := g.adj[u][v]; ok {
					out = append(out, Edge{From: u, To: v, Weight: w})
				}
			}
		}
		return out
	}
	for i, u := range g.names {
		for _, v := range g.names[i+1:] {
			if w, ok := g.adj[u][v]; ok {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	return out
}

// AdjacencyMatrix returns the weighted adjacency in node insertion
// order.
func (g *Graph) AdjacencyMatrix() *mat.Dense {
	n := len(g.names)
	if n == 0 {
		return &mat.Dense{}
	}
	m := mat.NewDense(n, n, nil)
	for i, u := range g.names {
		for j, v := range g.names {
			if w, ok := g.adj[u][v]; ok {
				m.Set(i, j, w)
			}
		}
	}
	return m
}

// AverageUncertainty returns the mean pairwise uncertainty
// 4p(1-p) over all node pairs of an undirected graph, ignoring the
// edge threshold. Graphs with fewer than two nodes report 0.
func (g *Graph) AverageUncertainty() (float64, error) {
	if g.cfg.Directed {
		return 0, fmt.Errorf("%w: average uncertainty", ErrUndirectedOnly)
	}
	n := len(g.names)
	if n < 2 {
		return 0, nil
	}
	total := 0.0
	err := g.eachPairProbability(func(p float64) {
		total += 4 * p * (1 - p)
	})
	if err != nil {
		return 0, err
	}
	return 2 * total / float64(n*(n-1)), nil
}

// Entropy returns the mean binary entropy of the pairwise dominance
// probabilities of an undirected graph, ignoring the edge threshold.
func (g *Graph) Entropy() (float64, error) {
	if g.cfg.Directed {
		return 0, fmt.Errorf("%w: graph entropy", ErrUndirectedOnly)
	}
	n := len(g.names)
	if n < 2 {
		return 0, nil
	}
	total := 0.0
	err := g.eachPairProbability(func(p float64) {
		total += binaryEntropy(p)
	})
	if err != nil {
		return 0, err
	}
	return 2 * total / float64(n*(n-1)), nil
}

// eachPairProbability visits P(node_j > node_i) for every pair i < j
// in insertion order, using raw probabilities untouched by rounding or
// the edge threshold.
func (g *Graph) eachPairProbability(visit func(p float64)) error {
	for i, u := range g.names {
		for _, v := range g.names[i+1:] {
			p, err := g.nodes[v].Gt(g.nodes[u])
			if err != nil {
				return err
			}
			visit(p)
		}
	}
	return nil
}

func binaryEntropy(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}
	return -(p*math.Log2(p) + (1-p)*math.Log2(1-p))
}

// Summary renders a framed report of the graph: type, counts, node
// intervals and weighted edges.
func (g *Graph) Summary() string {
	frame := strings.Repeat("=", 50)
	kind := "Undirected"
	if g.cfg.Directed {
		kind = "Directed"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", frame)
	fmt.Fprintf(&b, "Graph Type: %s\n", kind)
	fmt.Fprintf(&b, "Number of Nodes: %d\n", g.NumNodes())
	fmt.Fprintf(&b, "Number of Edges: %d\n", g.NumEdges())
	fmt.Fprintf(&b, "%s\n", frame)
	b.WriteString("Nodes:\n")
	for _, name := range g.names {
		fmt.Fprintf(&b, "  %s: %s\n", name, g.nodes[name])
	}
	fmt.Fprintf(&b, "%s\n", frame)
	b.WriteString("Edges (with weights):\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  %s -> %s: %.4f\n", e.From, e.To, e.Weight)
	}
	fmt.Fprintf(&b, "%s\n", frame)
	return b.String()
}

// dotNode carries the node name and its interval into the dot
// encoder.
type dotNode struct {
	id    int64
	name  string
	label string
}

func (n dotNode) ID() int64     { return n.id }
func (n dotNode) DOTID() string { return n.name }
func (n dotNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: strconv.Quote(n.label)}}
}

// dotEdge is a weighted edge labelled with its four-decimal weight.
type dotEdge struct {
	from   gonumgraph.Node
	to     gonumgraph.Node
	weight float64
}

func (e dotEdge) From() gonumgraph.Node { return e.from }
func (e dotEdge) To() gonumgraph.Node   { return e.to }
func (e dotEdge) ReversedEdge() gonumgraph.Edge {
	e.from, e.to = e.to, e.from
	return e
}
func (e dotEdge) Weight() float64 { return e.weight }
func (e dotEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: strconv.Quote(fmt.Sprintf("%.4f", e.weight))}}
}

// DOT renders the graph in Graphviz dot syntax for visualization.
func (g *Graph) DOT() (string, error) {
	ids := make(map[string]gonumgraph.Node, len(g.names))

	fill := func(dst interface {
		AddNode(gonumgraph.Node)
		SetWeightedEdge(gonumgraph.WeightedEdge)
	}) {
		for i, name := range g.names {
			n := dotNode{id: int64(i), name: name, label: fmt.Sprintf("%s %s", name, g.nodes[name])}
			ids[name] = n
			dst.AddNode(n)
		}
		for _, e := range g.Edges() {
			dst.SetWeightedEdge(dotEdge{from: ids[e.From], to: ids[e.To], weight: e.Weight})
		}
	}

	var (
		data []byte
		err  error
	)
	if g.cfg.Directed {
		wg := simple.NewWeightedDirectedGraph(0, 0)
		fill(wg)
		data, err = dot.Marshal(wg, "ain", "", "  ")
	} else {
		wg := simple.NewWeightedUndirectedGraph(0, 0)
		fill(wg)
		data, err = dot.Marshal(wg, "ain", "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Graph) String() string {
	kind := "Undirected"
	if g.cfg.Directed {
		kind = "Directed"
	}
	return fmt.Sprintf("GraphAIN(%s, nodes=%d, edges=%d)", kind, g.NumNodes(), g.NumEdges())
}
