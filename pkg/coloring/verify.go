package coloring

import (
	"github.com/ritzau/edgecolor/pkg/logging"
	"github.com/ritzau/edgecolor/pkg/model"
)

// Conflict is a pair of adjacent edges carrying the same color
type Conflict struct {
	I     int `json:"i"`
	J     int `json:"j"`
	Color int `json:"color"`
}

// Verification lists every conflict found in a coloring
type Verification struct {
	Conflicts []Conflict `json:"conflicts"`
}

// Valid reports whether no conflict was found
func (v Verification) Valid() bool {
	return len(v.Conflicts) == 0
}

// Verify checks every pair of edges against adjacency recomputed from the
// edges themselves, not the working conflict graph, which no longer holds
// colored edges. Unassigned edges never conflict.
func Verify(edges []model.Edge, coloring []int) Verification {
	colorOf := func(i int) int {
		if i < len(coloring) {
			return coloring[i]
		}
		return Unassigned
	}

	var v Verification
	for i := 0; i < len(edges); i++ {
		ci := colorOf(i)
		if ci == Unassigned {
			continue
		}
		for j := i + 1; j < len(edges); j++ {
			if colorOf(j) != ci || !edges[i].SharesEndpoint(edges[j]) {
				continue
			}
			v.Conflicts = append(v.Conflicts, Conflict{I: i, J: j, Color: ci})
			logging.Warn("conflict found", "edgeA", i, "edgeB", j, "color", ci)
		}
	}
	return v
}
