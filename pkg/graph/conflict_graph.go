package graph

import (
	"slices"

	"github.com/ritzau/edgecolor/pkg/model"
	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ConflictGraph is the relation "shares an endpoint" over edge indices.
// Node IDs are the indices into the edge list, so every structure sized by
// edge count lines up with it. It only holds unresolved conflicts: Resolve
// removes an edge's conflicts once that edge is colored.
type ConflictGraph struct {
	graph *simple.UndirectedGraph
	n     int
}

// NewConflictGraph creates a graph with n isolated edge indices
func NewConflictGraph(n int) *ConflictGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	return &ConflictGraph{graph: g, n: n}
}

// BuildConflictGraph compares every pair of edges and records a conflict
// for each pair sharing an endpoint. Both directions are set by one
// undirected edge, so the relation is symmetric by construction.
func BuildConflictGraph(edges []model.Edge) *ConflictGraph {
	cg := NewConflictGraph(len(edges))
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if edges[i].SharesEndpoint(edges[j]) {
				cg.AddConflict(i, j)
			}
		}
	}
	return cg
}

// AddConflict records that i and j conflict. Self conflicts are ignored.
func (cg *ConflictGraph) AddConflict(i, j int) {
	if i == j || cg.Conflicts(i, j) {
		return
	}
	cg.graph.SetEdge(cg.graph.NewEdge(simple.Node(int64(i)), simple.Node(int64(j))))
}

// Len returns the number of edge indices
func (cg *ConflictGraph) Len() int {
	return cg.n
}

// Degree returns the number of unresolved conflicts of i
func (cg *ConflictGraph) Degree(i int) int {
	return cg.graph.From(int64(i)).Len()
}

// Conflicts reports whether i and j currently conflict
func (cg *ConflictGraph) Conflicts(i, j int) bool {
	return cg.graph.HasEdgeBetween(int64(i), int64(j))
}

// Neighbors returns the indices currently conflicting with i, ascending
func (cg *ConflictGraph) Neighbors(i int) []int {
	nodes := gonum.NodesOf(cg.graph.From(int64(i)))
	neighbors := make([]int, 0, len(nodes))
	for _, node := range nodes {
		neighbors = append(neighbors, int(node.ID()))
	}
	slices.Sort(neighbors)
	return neighbors
}

// Resolve drops every conflict of i and returns the indices it was removed from
func (cg *ConflictGraph) Resolve(i int) []int {
	neighbors := cg.Neighbors(i)
	for _, j := range neighbors {
		cg.graph.RemoveEdge(int64(i), int64(j))
	}
	return neighbors
}

// TotalDegree returns the sum of all degrees, twice the number of conflicts
func (cg *ConflictGraph) TotalDegree() int {
	return 2 * cg.graph.Edges().Len()
}

// NumConflicts returns the number of unresolved conflicting pairs
func (cg *ConflictGraph) NumConflicts() int {
	return cg.graph.Edges().Len()
}
