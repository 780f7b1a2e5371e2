package coloring

import (
	"math/rand/v2"
	"slices"

	"github.com/ritzau/edgecolor/pkg/graph"
)

// Ordering names the candidate order a round's group was built from
type Ordering string

const (
	OrderDegreeDesc Ordering = "degree-desc"
	OrderRandom     Ordering = "random"
	OrderIndex      Ordering = "index"
)

// Selection is the outcome of one round of candidate selection
type Selection struct {
	Group      []int    // pairwise non-conflicting edge indices
	Ordering   Ordering // ordering that produced Group
	MaxDegree  int      // global maximum degree this round
	Candidates int      // uncolored edges at MaxDegree
	DegreeSum  int      // sum of the group's degrees
}

type candidateOrder struct {
	name  Ordering
	order []int
}

// SelectRound picks the next color class. Candidates are the uncolored
// edges at the global maximum degree; each of the three orderings is
// scanned greedily and the group with the most members wins, then the
// largest degree sum. Ties keep the earlier ordering.
func SelectRound(g *graph.ConflictGraph, degrees, coloring []int, rng *rand.Rand) Selection {
	maxDegree, indices := MaxDegreeIndices(degrees)

	candidates := make([]int, 0, len(indices))
	for _, i := range indices {
		if coloring[i] == Unassigned {
			candidates = append(candidates, i)
		}
	}

	sel := Selection{MaxDegree: maxDegree, Candidates: len(candidates), DegreeSum: -1}
	if len(candidates) == 0 {
		sel.DegreeSum = 0
		return sel
	}

	for _, c := range orderings(candidates, degrees, rng) {
		group := greedyGroup(g, c.order)
		sum := degreeSum(group, degrees)
		if len(group) > len(sel.Group) || (len(group) == len(sel.Group) && sum > sel.DegreeSum) {
			sel.Group = group
			sel.Ordering = c.name
			sel.DegreeSum = sum
		}
	}
	return sel
}

// orderings returns the candidates by descending degree, shuffled, and by index
func orderings(candidates, degrees []int, rng *rand.Rand) []candidateOrder {
	byDegree := slices.Clone(candidates)
	slices.SortStableFunc(byDegree, func(a, b int) int {
		return degrees[b] - degrees[a]
	})

	shuffled := slices.Clone(candidates)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	byIndex := slices.Clone(candidates)
	slices.Sort(byIndex)

	return []candidateOrder{
		{OrderDegreeDesc, byDegree},
		{OrderRandom, shuffled},
		{OrderIndex, byIndex},
	}
}

// greedyGroup scans order and keeps each index that conflicts with none
// already kept, checked against the current conflict graph
func greedyGroup(g *graph.ConflictGraph, order []int) []int {
	group := make([]int, 0, len(order))
	for _, i := range order {
		free := true
		for _, member := range group {
			if g.Conflicts(i, member) {
				free = false
				break
			}
		}
		if free {
			group = append(group, i)
		}
	}
	return group
}

func degreeSum(group, degrees []int) int {
	sum := 0
	for _, i := range group {
		sum += degrees[i]
	}
	return sum
}
