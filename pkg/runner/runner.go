package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/ritzau/edgecolor/pkg/coloring"
	"github.com/ritzau/edgecolor/pkg/dimacs"
	"github.com/ritzau/edgecolor/pkg/finder"
	"github.com/ritzau/edgecolor/pkg/graph"
	"github.com/ritzau/edgecolor/pkg/logging"
	"github.com/ritzau/edgecolor/pkg/output"
)

// ErrNoInstances is returned when a directory input holds no *.col file
var ErrNoInstances = errors.New("no instances found")

// Exit codes of the edgecolor command
const (
	ExitOK        = 0
	ExitError     = 1
	ExitPartial   = 2
	ExitConflicts = 3
)

// Options configures a Runner
type Options struct {
	Seed      uint64    // 0 leaves the random ordering unseeded
	OutputDir string    // where CSV summaries go
	WriteCSV  bool
	Console   io.Writer // report destination, os.Stdout when nil
}

// Runner colors instances and reports the results
type Runner struct {
	opts Options
	mu   sync.Mutex // one run at a time; watch mode may trigger overlapping runs
}

// NewRunner creates a new runner
func NewRunner(opts Options) *Runner {
	if opts.Console == nil {
		opts.Console = os.Stdout
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	return &Runner{opts: opts}
}

// Run colors every instance named by input, a file or a directory,
// stopping at the first instance that fails
func (r *Runner) Run(ctx context.Context, input string) ([]*output.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	paths, err := finder.ResolveInput(input)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: %w", input, ErrNoInstances)
	}

	reports := make([]*output.Report, 0, len(paths))
	for i, path := range paths {
		if len(paths) > 1 {
			logging.Info("coloring instance", "index", i+1, "of", len(paths), "path", path)
		}
		report, err := r.runInstance(ctx, path)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// RunInstance colors a single instance file
func (r *Runner) RunInstance(ctx context.Context, path string) (*output.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runInstance(ctx, path)
}

func (r *Runner) runInstance(ctx context.Context, path string) (*output.Report, error) {
	instance, err := dimacs.ParseFile(path)
	if err != nil {
		return nil, err
	}

	ctx, done := logging.StartRun(ctx, "coloring", "instance", instance.Name)
	logging.InfoContext(ctx, "instance loaded", "edges", instance.NumEdges())

	stats := graph.ComputeVertexStats(instance.Edges)
	logging.DebugContext(ctx, "vertex statistics",
		"vertices", stats.Vertices,
		"components", stats.Components,
		"maxDegree", stats.MaxDegree,
		"selfLoops", stats.SelfLoops,
		"parallel", stats.Parallel)

	opts := []coloring.Option{
		coloring.WithRoundHook(func(round coloring.Round) {
			logging.InfoContext(ctx, "round complete", "round", round.Color, "colored", round.Size())
		}),
	}
	if r.opts.Seed != 0 {
		opts = append(opts, coloring.WithSeed(r.opts.Seed))
	}

	// Building the conflict graph is not part of the measured time
	session := coloring.NewSession(instance.Edges, opts...)
	start := time.Now()
	result := session.Run(ctx)
	elapsed := time.Since(start)

	if result.Status == coloring.StatusCanceled {
		done("status", string(result.Status))
		return nil, fmt.Errorf("coloring %s: %w", instance.Name, result.Err)
	}

	verification := coloring.Verify(instance.Edges, result.Coloring)
	report := output.NewReport(instance, stats, result, verification, elapsed)
	output.PrintReport(r.opts.Console, report)

	if r.opts.WriteCSV {
		csvPath, err := output.SaveCSV(r.opts.OutputDir, report)
		if err != nil {
			return nil, fmt.Errorf("exporting %s: %w", instance.Name, err)
		}
		fmt.Fprintf(r.opts.Console, "\nFile '%s' created successfully.\n", csvPath)
	}

	done("colors", result.Colors, "status", string(result.Status), "valid", verification.Valid())
	return report, nil
}

// ExitCode folds reports into the process exit status: conflicts outrank
// partial colorings
func ExitCode(reports []*output.Report) int {
	code := ExitOK
	for _, r := range reports {
		if !r.Verification.Valid() {
			return ExitConflicts
		}
		if r.Status != coloring.StatusComplete {
			code = ExitPartial
		}
	}
	return code
}
