package graph

import (
	"testing"

	"github.com/ritzau/edgecolor/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathEdges() []model.Edge {
	return []model.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}}
}

func triangleEdges() []model.Edge {
	return []model.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}}
}

// assertSymmetric checks j ∈ N(i) ⇔ i ∈ N(j) for every pair
func assertSymmetric(t *testing.T, cg *ConflictGraph) {
	t.Helper()
	for i := 0; i < cg.Len(); i++ {
		for _, j := range cg.Neighbors(i) {
			assert.Contains(t, cg.Neighbors(j), i, "conflict %d-%d is not symmetric", i, j)
		}
		assert.Len(t, cg.Neighbors(i), cg.Degree(i))
	}
}

func TestBuildConflictGraphPath(t *testing.T) {
	cg := BuildConflictGraph(pathEdges())

	require.Equal(t, 4, cg.Len())
	assert.Equal(t, []int{1}, cg.Neighbors(0))
	assert.Equal(t, []int{0, 2}, cg.Neighbors(1))
	assert.Equal(t, []int{1, 3}, cg.Neighbors(2))
	assert.Equal(t, []int{2}, cg.Neighbors(3))

	assert.True(t, cg.Conflicts(0, 1))
	assert.True(t, cg.Conflicts(1, 0))
	assert.False(t, cg.Conflicts(0, 2))
	assert.Equal(t, 3, cg.NumConflicts())
	assert.Equal(t, 6, cg.TotalDegree())
	assertSymmetric(t, cg)
}

func TestBuildConflictGraphTriangle(t *testing.T) {
	cg := BuildConflictGraph(triangleEdges())

	for i := 0; i < 3; i++ {
		assert.Equal(t, 2, cg.Degree(i), "edge %d", i)
	}
	assertSymmetric(t, cg)
}

func TestBuildConflictGraphMatchesPairwiseRelation(t *testing.T) {
	edges := []model.Edge{
		{U: 1, V: 2}, {U: 3, V: 4}, {U: 2, V: 3}, {U: 5, V: 5},
		{U: 5, V: 6}, {U: 2, V: 1}, {U: 7, V: 8}, {U: 6, V: 1},
	}
	cg := BuildConflictGraph(edges)

	for i := range edges {
		for j := range edges {
			if i == j {
				assert.False(t, cg.Conflicts(i, j))
				continue
			}
			assert.Equal(t, edges[i].SharesEndpoint(edges[j]), cg.Conflicts(i, j), "pair %d-%d", i, j)
		}
	}
	assertSymmetric(t, cg)
}

func TestBuildConflictGraphEmptyAndIsolated(t *testing.T) {
	empty := BuildConflictGraph(nil)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 0, empty.TotalDegree())

	isolated := BuildConflictGraph([]model.Edge{{U: 1, V: 2}, {U: 3, V: 4}})
	assert.Equal(t, 2, isolated.Len())
	assert.Equal(t, 0, isolated.Degree(0))
	assert.Empty(t, isolated.Neighbors(1))
}

func TestResolve(t *testing.T) {
	cg := BuildConflictGraph(pathEdges())

	removed := cg.Resolve(1)

	assert.Equal(t, []int{0, 2}, removed)
	assert.Equal(t, 0, cg.Degree(1))
	assert.Empty(t, cg.Neighbors(0))
	assert.Equal(t, []int{3}, cg.Neighbors(2))
	assert.False(t, cg.Conflicts(0, 1))
	assert.Equal(t, 2, cg.TotalDegree())
	assertSymmetric(t, cg)

	// Resolving again is a no-op
	assert.Empty(t, cg.Resolve(1))
}

func TestAddConflictIgnoresSelfAndDuplicates(t *testing.T) {
	cg := NewConflictGraph(3)
	cg.AddConflict(0, 0)
	cg.AddConflict(0, 1)
	cg.AddConflict(1, 0)

	assert.Equal(t, 1, cg.NumConflicts())
	assert.Equal(t, 0, cg.Degree(2))
}
