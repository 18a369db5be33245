package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/asymintervals/ain"
)

func buildGraph(t *testing.T, cfg Config, nodes ...[4]interface{}) *Graph {
	t.Helper()
	g, err := New(cfg)
	require.NoError(t, err)
	for _, n := range nodes {
		name := n[0].(string)
		x := ain.Must(ain.New(n[1].(float64), n[2].(float64), n[3].(float64)))
		require.NoError(t, g.AddNode(name, x))
	}
	return g
}

func TestNewConfig(t *testing.T) {
	_, err := New(Config{EdgeThreshold: -0.1})
	require.Error(t, err)

	_, err = New(Config{EdgeThreshold: 1.5})
	require.Error(t, err)

	_, err = New(Config{DominanceOnly: true})
	require.ErrorIs(t, err, ErrDirectedOnly)

	_, err = New(Config{Directed: true, DominanceOnly: true})
	require.NoError(t, err)
}

func TestAddNodeDuplicate(t *testing.T) {
	g, err := New(Config{})
	require.NoError(t, err)

	x := ain.Must(ain.New(0, 10, 2))
	require.NoError(t, g.AddNode("A", x))
	require.ErrorIs(t, g.AddNode("A", x), ErrDuplicateNode)
}

func TestDirectedEdges(t *testing.T) {
	g := buildGraph(t, Config{Directed: true},
		[4]interface{}{"A", 0.0, 10.0, 2.0},
		[4]interface{}{"B", 2.0, 8.0, 3.0},
	)

	require.Equal(t, 2, g.NumNodes())
	require.Equal(t, 2, g.NumEdges())

	w, ok := g.EdgeWeight("A", "B")
	require.True(t, ok)
	assert.InDelta(t, 0.175, w, 1e-12)

	w, ok = g.EdgeWeight("B", "A")
	require.True(t, ok)
	assert.InDelta(t, 0.825, w, 1e-12)

	assert.Equal(t, 2, g.Degree("A"))
}

func TestUndirectedEdges(t *testing.T) {
	g := buildGraph(t, Config{},
		[4]interface{}{"A", 0.0, 10.0, 2.0},
		[4]interface{}{"B", 2.0, 8.0, 3.0},
		[4]interface{}{"C", 4.0, 12.0, 5.0},
	)

	require.Equal(t, 3, g.NumEdges())

	w, ok := g.EdgeWeight("A", "B")
	require.True(t, ok)
	assert.InDelta(t, 0.5775, w, 1e-12)

	// symmetric lookup
	back, ok := g.EdgeWeight("B", "A")
	require.True(t, ok)
	assert.Equal(t, w, back)

	w, ok = g.EdgeWeight("A", "C")
	require.True(t, ok)
	assert.InDelta(t, 0.4402, w, 1e-12)

	w, ok = g.EdgeWeight("B", "C")
	require.True(t, ok)
	assert.InDelta(t, 0.3751, w, 1e-12)

	assert.Equal(t, 2, g.Degree("A"))
}

func TestEdgeThreshold(t *testing.T) {
	g := buildGraph(t, Config{EdgeThreshold: 0.5},
		[4]interface{}{"A", 0.0, 10.0, 2.0},
		[4]interface{}{"B", 2.0, 8.0, 3.0},
		[4]interface{}{"C", 4.0, 12.0, 5.0},
	)

	// only the A-B weight 0.5775 clears the 0.5 threshold
	require.Equal(t, 1, g.NumEdges())
	_, ok := g.EdgeWeight("A", "C")
	assert.False(t, ok)
	_, ok = g.EdgeWeight("A", "B")
	assert.True(t, ok)
}

func TestDominanceOnly(t *testing.T) {
	g := buildGraph(t, Config{Directed: true, DominanceOnly: true},
		[4]interface{}{"A", 0.0, 10.0, 2.0},
		[4]interface{}{"B", 2.0, 8.0, 3.0},
		[4]interface{}{"C", 4.0, 12.0, 5.0},
	)

	// each pair keeps only its stronger direction, with raw weights
	require.Equal(t, 3, g.NumEdges())

	w, ok := g.EdgeWeight("B", "A")
	require.True(t, ok)
	assert.InDelta(t, 0.825, w, 1e-9)

	w, ok = g.EdgeWeight("C", "A")
	require.True(t, ok)
	assert.InDelta(t, 0.8741071428571429, w, 1e-9)

	w, ok = g.EdgeWeight("C", "B")
	require.True(t, ok)
	assert.InDelta(t, 0.8952380952380956, w, 1e-9)

	_, ok = g.EdgeWeight("A", "B")
	assert.False(t, ok)
}

func TestEdgesOrder(t *testing.T) {
	g := buildGraph(t, Config{Directed: true},
		[4]interface{}{"A", 0.0, 10.0, 2.0},
		[4]interface{}{"B", 2.0, 8.0, 3.0},
		[4]interface{}{"C", 4.0, 12.0, 5.0},
	)

	var got []string
	for _, e := range g.Edges() {
		got = append(got, e.From+e.To)
	}
	assert.Equal(t, []string{"AB", "AC", "BA", "BC", "CA", "CB"}, got)
}

func TestAdjacencyMatrix(t *testing.T) {
	g := buildGraph(t, Config{Directed: true},
		[4]interface{}{"A", 0.0, 10.0, 2.0},
		[4]interface{}{"B", 2.0, 8.0, 3.0},
	)

	m := g.AdjacencyMatrix()
	rows, cols := m.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 2, cols)
	assert.Zero(t, m.At(0, 0))
	assert.InDelta(t, 0.175, m.At(0, 1), 1e-12)
	assert.InDelta(t, 0.825, m.At(1, 0), 1e-12)
}

func TestUncertaintyMetrics(t *testing.T) {
	g := buildGraph(t, Config{},
		[4]interface{}{"A", 0.0, 10.0, 2.0},
		[4]interface{}{"B", 2.0, 8.0, 3.0},
		[4]interface{}{"C", 4.0, 12.0, 5.0},
	)

	avg, err := g.AverageUncertainty()
	require.NoError(t, err)
	assert.InDelta(t, 0.4642742583144365, avg, 1e-9)

	ent, err := g.Entropy()
	require.NoError(t, err)
	assert.InDelta(t, 0.5663309438220124, ent, 1e-9)
}

func TestMetricsIgnoreThreshold(t *testing.T) {
	sparse := buildGraph(t, Config{EdgeThreshold: 0.99},
		[4]interface{}{"A", 0.0, 10.0, 2.0},
		[4]interface{}{"B", 2.0, 8.0, 3.0},
		[4]interface{}{"C", 4.0, 12.0, 5.0},
	)
	require.Equal(t, 0, sparse.NumEdges())

	avg, err := sparse.AverageUncertainty()
	require.NoError(t, err)
	assert.InDelta(t, 0.4642742583144365, avg, 1e-9)
}

func TestMetricsDirectedRejected(t *testing.T) {
	g := buildGraph(t, Config{Directed: true},
		[4]interface{}{"A", 0.0, 10.0, 2.0},
		[4]interface{}{"B", 2.0, 8.0, 3.0},
	)

	_, err := g.AverageUncertainty()
	require.ErrorIs(t, err, ErrUndirectedOnly)
	_, err = g.Entropy()
	require.ErrorIs(t, err, ErrUndirectedOnly)
}

func TestMetricsTinyGraphs(t *testing.T) {
	g, err := New(Config{})
	require.NoError(t, err)

	avg, err := g.AverageUncertainty()
	require.NoError(t, err)
	assert.Zero(t, avg)

	require.NoError(t, g.AddNode("A", ain.Must(ain.New(0, 10, 2))))
	ent, err := g.Entropy()
	require.NoError(t, err)
	assert.Zero(t, ent)
}

func TestSummary(t *testing.T) {
	g := buildGraph(t, Config{Directed: true},
		[4]interface{}{"A", 0.0, 10.0, 2.0},
		[4]interface{}{"B", 2.0, 8.0, 3.0},
	)

	want := strings.Join([]string{
		"==================================================",
		"Graph Type: Directed",
		"Number of Nodes: 2",
		"Number of Edges: 2",
		"==================================================",
		"Nodes:",
		"  A: [0.0000, 10.0000]_{2.0000}",
		"  B: [2.0000, 8.0000]_{3.0000}",
		"==================================================",
		"Edges (with weights):",
		"  A -> B: 0.1750",
		"  B -> A: 0.8250",
		"==================================================",
	}, "\n") + "\n"
	assert.Equal(t, want, g.Summary())

	assert.Equal(t, "GraphAIN(Directed, nodes=2, edges=2)", g.String())
}

func TestDOT(t *testing.T) {
	g := buildGraph(t, Config{Directed: true},
		[4]interface{}{"A", 0.0, 10.0, 2.0},
		[4]interface{}{"B", 2.0, 8.0, 3.0},
	)

	out, err := g.DOT()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph ain {"))
	assert.Contains(t, out, `label="A [0.0000, 10.0000]_{2.0000}"`)
	assert.Contains(t, out, `A -> B [label="0.1750"]`)
	assert.Contains(t, out, `B -> A [label="0.8250"]`)

	u := buildGraph(t, Config{},
		[4]interface{}{"A", 0.0, 10.0, 2.0},
		[4]interface{}{"B", 2.0, 8.0, 3.0},
	)
	out, err = u.DOT()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph ain {"))
	assert.Contains(t, out, `A -- B [label="0.5775"]`)
}
