package coloring

import (
	"math/rand/v2"

	"github.com/ritzau/edgecolor/pkg/model"
)

func pathEdges() []model.Edge {
	return []model.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}}
}

func triangleEdges() []model.Edge {
	return []model.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}}
}

// randomEdges draws m edges over vertices 1..n, loops and repeats included
func randomEdges(seed uint64, n, m int) []model.Edge {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	edges := make([]model.Edge, m)
	for i := range edges {
		edges[i] = model.Edge{U: rng.IntN(n) + 1, V: rng.IntN(n) + 1}
	}
	return edges
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func isIndependent(edges []model.Edge, group []int) bool {
	for a := 0; a < len(group); a++ {
		for b := a + 1; b < len(group); b++ {
			if edges[group[a]].SharesEndpoint(edges[group[b]]) {
				return false
			}
		}
	}
	return true
}
