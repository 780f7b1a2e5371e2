package coloring

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/ritzau/edgecolor/pkg/graph"
	"github.com/ritzau/edgecolor/pkg/logging"
	"github.com/ritzau/edgecolor/pkg/model"
)

// Unassigned marks an edge that has no color yet
const Unassigned = -1

// Status tells how a run ended
type Status string

const (
	// StatusComplete means every edge has a color
	StatusComplete Status = "complete"
	// StatusPartial means a round found nothing to color while edges were
	// still uncolored; those edges stay Unassigned
	StatusPartial Status = "partial"
	// StatusCanceled means the context ended between rounds
	StatusCanceled Status = "canceled"
)

// Round records one color class
type Round struct {
	Color      int      `json:"color"`
	Group      []int    `json:"group"`
	MaxDegree  int      `json:"maxDegree"`
	Candidates int      `json:"candidates"`
	Ordering   Ordering `json:"ordering"`
}

// Size returns the number of edges colored in the round
func (r Round) Size() int {
	return len(r.Group)
}

// Result is the outcome of a coloring run
type Result struct {
	Coloring []int   `json:"coloring"` // color per edge index, Unassigned if none
	Colors   int     `json:"colors"`   // number of colors used (== rounds)
	Rounds   []Round `json:"rounds"`
	Status   Status  `json:"status"`
	Err      error   `json:"-"` // context error when Status is StatusCanceled
}

// Uncolored returns how many edges were left without a color
func (r *Result) Uncolored() int {
	n := 0
	for _, c := range r.Coloring {
		if c == Unassigned {
			n++
		}
	}
	return n
}

// Complete reports whether every edge got a color
func (r *Result) Complete() bool {
	return r.Status == StatusComplete
}

type options struct {
	rng     *rand.Rand
	onRound func(Round)
}

// Option configures a Session
type Option func(*options)

// WithRand sets the source used for the random ordering
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed makes the random ordering reproducible
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithRoundHook is called after each round has been applied
func WithRoundHook(fn func(Round)) Option {
	return func(o *options) {
		o.onRound = fn
	}
}

// Session owns the working state of one coloring run: the conflict graph,
// the degree array and the coloring, all indexed by edge position.
// It is not safe for concurrent use.
type Session struct {
	edges    []model.Edge
	graph    *graph.ConflictGraph
	degrees  []int
	coloring []int
	rounds   []Round

	rng         *rand.Rand
	onRound     func(Round)
	selectRound func(*graph.ConflictGraph, []int, []int, *rand.Rand) Selection
}

// NewSession builds the conflict graph for edges and prepares an empty coloring
func NewSession(edges []model.Edge, opts ...Option) *Session {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	g := graph.BuildConflictGraph(edges)
	coloring := make([]int, len(edges))
	for i := range coloring {
		coloring[i] = Unassigned
	}

	return &Session{
		edges:       edges,
		graph:       g,
		degrees:     Degrees(g),
		coloring:    coloring,
		rng:         o.rng,
		onRound:     o.onRound,
		selectRound: SelectRound,
	}
}

// Graph returns the working conflict graph
func (s *Session) Graph() *graph.ConflictGraph {
	return s.graph
}

// Degrees returns a copy of the degree array
func (s *Session) Degrees() []int {
	return slices.Clone(s.degrees)
}

// Coloring returns a copy of the current coloring
func (s *Session) Coloring() []int {
	return slices.Clone(s.coloring)
}

// HasUncolored reports whether any edge is still Unassigned
func (s *Session) HasUncolored() bool {
	return slices.Contains(s.coloring, Unassigned)
}

// Apply gives every edge in group the color, zeroes its degree and removes
// it from the conflict graph so it no longer constrains later rounds.
// group must come from SelectRound; coloring an edge twice panics.
func (s *Session) Apply(group []int, color int) {
	for _, i := range group {
		if s.coloring[i] != Unassigned {
			panic(fmt.Sprintf("coloring: edge %d already has color %d", i, s.coloring[i]))
		}
		s.coloring[i] = color
		s.degrees[i] = 0
		for _, j := range s.graph.Resolve(i) {
			s.degrees[j]--
		}
	}
}

// Run colors rounds until every edge has a color. A round that selects
// nothing while edges remain ends the run with StatusPartial. The context
// is only checked between rounds.
func (s *Session) Run(ctx context.Context) *Result {
	result := &Result{Status: StatusComplete}
	color := 0

	for s.HasUncolored() {
		if err := ctx.Err(); err != nil {
			result.Status = StatusCanceled
			result.Err = err
			break
		}

		s.degrees = Degrees(s.graph)
		sel := s.selectRound(s.graph, s.degrees, s.coloring, s.rng)
		if len(sel.Group) == 0 {
			logging.WarnContext(ctx, "no candidates left, stopping with partial coloring",
				"round", color, "maxDegree", sel.MaxDegree)
			result.Status = StatusPartial
			break
		}

		s.Apply(sel.Group, color)

		round := Round{
			Color:      color,
			Group:      sel.Group,
			MaxDegree:  sel.MaxDegree,
			Candidates: sel.Candidates,
			Ordering:   sel.Ordering,
		}
		s.rounds = append(s.rounds, round)
		logging.TraceContext(ctx, "round applied",
			"color", color,
			"size", round.Size(),
			"candidates", sel.Candidates,
			"maxDegree", sel.MaxDegree,
			"ordering", string(sel.Ordering))
		if s.onRound != nil {
			s.onRound(round)
		}
		color++
	}

	result.Coloring = s.Coloring()
	result.Colors = color
	result.Rounds = slices.Clone(s.rounds)
	return result
}

// Color runs a full session over edges
func Color(ctx context.Context, edges []model.Edge, opts ...Option) *Result {
	return NewSession(edges, opts...).Run(ctx)
}
