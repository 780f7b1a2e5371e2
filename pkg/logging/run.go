package logging

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StartRun tags ctx with a fresh run ID and logs the start of a run.
// The returned func logs completion with the elapsed time.
func StartRun(ctx context.Context, what string, args ...any) (context.Context, func(args ...any)) {
	runID := GetRunID(ctx)
	if runID == "" {
		runID = uuid.New().String()
	}
	ctx = WithRunID(ctx, runID)

	start := time.Now()
	InfoContext(ctx, what+" started", args...)

	return ctx, func(more ...any) {
		all := append(append([]any{}, args...), more...)
		all = append(all, "durationMs", time.Since(start).Milliseconds())
		InfoContext(ctx, what+" finished", all...)
	}
}
