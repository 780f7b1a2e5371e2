package output

import (
	"time"

	"github.com/ritzau/edgecolor/pkg/coloring"
	"github.com/ritzau/edgecolor/pkg/graph"
	"github.com/ritzau/edgecolor/pkg/model"
)

// Report gathers everything printed and exported for one instance
type Report struct {
	Instance     string
	Edges        int
	Stats        graph.VertexStats
	Colors       int
	Rounds       []coloring.Round
	Elapsed      time.Duration
	Usage        *Usage
	Status       coloring.Status
	Verification coloring.Verification
}

// NewReport assembles a report from a finished run
func NewReport(instance *model.Instance, stats graph.VertexStats, result *coloring.Result,
	verification coloring.Verification, elapsed time.Duration) *Report {
	return &Report{
		Instance:     instance.Name,
		Edges:        instance.NumEdges(),
		Stats:        stats,
		Colors:       result.Colors,
		Rounds:       result.Rounds,
		Elapsed:      elapsed,
		Usage:        Summarize(result.Coloring),
		Status:       result.Status,
		Verification: verification,
	}
}

// ElapsedMillis is the execution time as reported in the summary
func (r *Report) ElapsedMillis() int64 {
	return r.Elapsed.Milliseconds()
}

// Uncolored returns the number of edges left without a color
func (r *Report) Uncolored() int {
	return r.Usage.Unassigned()
}
