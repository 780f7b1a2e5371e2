package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/ritzau/edgecolor/pkg/coloring"
)

// PrintReport prints the final result with colors
func PrintReport(w io.Writer, r *Report) {
	// Color definitions
	bold := color.New(color.Bold)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	// Header
	bold.Fprintln(w, "--- FINAL RESULT ---")
	fmt.Fprintf(w, "Instance: %s\n", r.Instance)
	fmt.Fprintf(w, "Number of edges: %d\n", r.Edges)
	fmt.Fprintf(w, "Vertices: %d (%d component(s), max degree %d)\n",
		r.Stats.Vertices, r.Stats.Components, r.Stats.MaxDegree)
	cyan.Fprintf(w, "Total number of colors used: %d", r.Colors)
	fmt.Fprintf(w, " (lower bound %d)\n", r.Stats.LowerBound())
	fmt.Fprintf(w, "Execution time: %d ms\n", r.ElapsedMillis())
	fmt.Fprintln(w)

	// Per-color table
	fmt.Fprintln(w, "Color usage summary:")
	for _, e := range r.Usage.Entries() {
		fmt.Fprintf(w, "Color %d: %d edges\n", e.Color, e.Edges)
	}
	fmt.Fprintln(w)

	switch r.Status {
	case coloring.StatusPartial:
		yellow.Fprintf(w, "Partial coloring: %d edge(s) left uncolored\n", r.Uncolored())
	case coloring.StatusCanceled:
		yellow.Fprintf(w, "Canceled: %d edge(s) left uncolored\n", r.Uncolored())
	}

	// Conflict check
	if r.Verification.Valid() {
		green.Fprintln(w, "No conflicts found: valid coloring.")
		return
	}
	red.Fprintln(w, "Conflicts found: invalid coloring.")
	for _, c := range r.Verification.Conflicts {
		red.Fprintf(w, "  edges %d and %d share color %d\n", c.I, c.J, c.Color)
	}
}
