package graph

import (
	"github.com/ritzau/edgecolor/pkg/model"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// VertexStats describes the input graph itself (vertices, not edges)
type VertexStats struct {
	Vertices   int // distinct vertex identifiers seen in the edge list
	Components int // connected components among those vertices
	MaxDegree  int // largest number of edges incident to one vertex
	SelfLoops  int
	Parallel   int // edges repeating an earlier vertex pair
}

// LowerBound is the fewest colors any proper edge coloring can use:
// all edges at the busiest vertex pairwise conflict.
func (s VertexStats) LowerBound() int {
	return s.MaxDegree
}

// ComputeVertexStats builds the vertex graph of the instance and summarizes it
func ComputeVertexStats(edges []model.Edge) VertexStats {
	var stats VertexStats

	g := simple.NewUndirectedGraph()
	incident := make(map[int]int)

	for _, e := range edges {
		for _, v := range []int{e.U, e.V} {
			if g.Node(int64(v)) == nil {
				g.AddNode(simple.Node(int64(v)))
			}
		}

		if e.U == e.V {
			incident[e.U]++
			stats.SelfLoops++
			continue
		}
		incident[e.U]++
		incident[e.V]++

		// simple graphs hold one edge per vertex pair
		if g.HasEdgeBetween(int64(e.U), int64(e.V)) {
			stats.Parallel++
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(int64(e.U)), simple.Node(int64(e.V))))
	}

	for _, count := range incident {
		if count > stats.MaxDegree {
			stats.MaxDegree = count
		}
	}

	stats.Vertices = g.Nodes().Len()
	stats.Components = len(topo.ConnectedComponents(g))
	return stats
}
