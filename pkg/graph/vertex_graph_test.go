package graph

import (
	"testing"

	"github.com/ritzau/edgecolor/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestComputeVertexStats(t *testing.T) {
	tests := []struct {
		name     string
		edges    []model.Edge
		expected VertexStats
	}{
		{
			name:     "empty",
			edges:    nil,
			expected: VertexStats{},
		},
		{
			name:     "path",
			edges:    pathEdges(),
			expected: VertexStats{Vertices: 5, Components: 1, MaxDegree: 2},
		},
		{
			name:     "triangle",
			edges:    triangleEdges(),
			expected: VertexStats{Vertices: 3, Components: 1, MaxDegree: 2},
		},
		{
			name:     "two components with star",
			edges:    []model.Edge{{U: 1, V: 2}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 7, V: 8}},
			expected: VertexStats{Vertices: 6, Components: 2, MaxDegree: 3},
		},
		{
			name:     "loops and parallel edges",
			edges:    []model.Edge{{U: 1, V: 2}, {U: 2, V: 1}, {U: 3, V: 3}},
			expected: VertexStats{Vertices: 3, Components: 2, MaxDegree: 2, SelfLoops: 1, Parallel: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeVertexStats(tt.edges)
			assert.Equal(t, tt.expected, stats)
			assert.Equal(t, tt.expected.MaxDegree, stats.LowerBound())
		})
	}
}
