package model

import "fmt"

// Edge is an unordered pair of vertex identifiers as read from the input.
// Its identity is its index in Instance.Edges.
type Edge struct {
	U int `json:"u"`
	V int `json:"v"`
}

// SharesEndpoint reports whether the two edges have at least one vertex in common
func (e Edge) SharesEndpoint(other Edge) bool {
	return e.U == other.U || e.U == other.V || e.V == other.U || e.V == other.V
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.U, e.V)
}

// Instance is a loaded edge list together with what its problem line declared
type Instance struct {
	Name  string `json:"name"` // file name, e.g. "dsjc250.5.col"
	Path  string `json:"path"`
	Edges []Edge `json:"edges"`

	// Values from the "p" line; zero when the file has none
	Format           string `json:"format,omitempty"`
	DeclaredVertices int    `json:"declaredVertices,omitempty"`
	DeclaredEdges    int    `json:"declaredEdges,omitempty"`
}

// NumEdges returns the number of loaded edges
func (in *Instance) NumEdges() int {
	return len(in.Edges)
}
