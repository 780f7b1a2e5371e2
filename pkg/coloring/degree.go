package coloring

import "github.com/ritzau/edgecolor/pkg/graph"

// Degrees returns the current conflict count of every edge index.
// It is recomputed from the graph rather than carried between rounds.
func Degrees(g *graph.ConflictGraph) []int {
	degrees := make([]int, g.Len())
	for i := range degrees {
		degrees[i] = g.Degree(i)
	}
	return degrees
}

// MaxDegreeIndices returns the largest degree and the indices attaining it,
// in ascending order. An empty slice yields 0 and no indices.
func MaxDegreeIndices(degrees []int) (int, []int) {
	if len(degrees) == 0 {
		return 0, nil
	}

	maxDegree := degrees[0]
	for _, d := range degrees[1:] {
		if d > maxDegree {
			maxDegree = d
		}
	}

	var indices []int
	for i, d := range degrees {
		if d == maxDegree {
			indices = append(indices, i)
		}
	}
	return maxDegree, indices
}
