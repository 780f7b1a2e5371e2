package watcher

import (
	"context"
	"slices"
	"time"

	"github.com/ritzau/edgecolor/pkg/logging"
)

// Debouncer batches rapid file system events to avoid excessive re-runs
type Debouncer struct {
	input       <-chan ChangeEvent
	output      chan ChangeEvent
	quietPeriod time.Duration
	maxWait     time.Duration
}

// NewDebouncer creates a new event debouncer
func NewDebouncer(input <-chan ChangeEvent, quietPeriod, maxWait time.Duration) *Debouncer {
	return &Debouncer{
		input:       input,
		output:      make(chan ChangeEvent, 10),
		quietPeriod: quietPeriod,
		maxWait:     maxWait,
	}
}

// Start begins processing events with debouncing
func (d *Debouncer) Start(ctx context.Context) {
	go d.run(ctx)
}

// run emits at most one event per type once input has been quiet for
// quietPeriod, or maxWait after the first pending event
func (d *Debouncer) run(ctx context.Context) {
	defer close(d.output)

	var (
		quiet       <-chan time.Time
		deadline    <-chan time.Time
		accumulated = make(map[ChangeType][]string)
		eventCount  int
	)

	flush := func() {
		quiet, deadline = nil, nil
		if eventCount == 0 {
			return
		}
		logging.Debug("flushing accumulated events", "count", eventCount)

		// Modifications first; a path both removed and rewritten is reported as both
		for _, changeType := range []ChangeType{ChangeTypeModified, ChangeTypeRemoved} {
			paths := accumulated[changeType]
			if len(paths) == 0 {
				continue
			}
			slices.Sort(paths)
			select {
			case d.output <- ChangeEvent{Type: changeType, Paths: slices.Compact(paths), Timestamp: time.Now()}:
			case <-ctx.Done():
			}
		}

		accumulated = make(map[ChangeType][]string)
		eventCount = 0
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-d.input:
			if !ok {
				flush()
				return
			}

			accumulated[event.Type] = append(accumulated[event.Type], event.Paths...)
			eventCount++

			quiet = time.After(d.quietPeriod)
			if deadline == nil {
				deadline = time.After(d.maxWait)
			}

		case <-quiet:
			flush()

		case <-deadline:
			flush()
		}
	}
}

// Output returns the channel of debounced events
func (d *Debouncer) Output() <-chan ChangeEvent {
	return d.output
}
