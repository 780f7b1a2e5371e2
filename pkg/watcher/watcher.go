package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/ritzau/edgecolor/pkg/finder"
	"github.com/ritzau/edgecolor/pkg/logging"
)

// ChangeType represents the type of file change detected
type ChangeType int

const (
	ChangeTypeModified ChangeType = iota // created or written
	ChangeTypeRemoved                    // removed or renamed away
)

func (c ChangeType) String() string {
	if c == ChangeTypeRemoved {
		return "removed"
	}
	return "modified"
}

// ChangeEvent represents a batch of file system changes
type ChangeEvent struct {
	Type      ChangeType
	Paths     []string
	Timestamp time.Time
}

// FileWatcher watches an instance file, or every *.col file under a directory
type FileWatcher struct {
	watcher *fsnotify.Watcher
	input   string // cleaned input path
	isDir   bool
	events  chan ChangeEvent
}

// NewFileWatcher creates a watcher for the input path
func NewFileWatcher(input string) (*FileWatcher, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &FileWatcher{
		watcher: watcher,
		input:   filepath.Clean(input),
		isDir:   info.IsDir(),
		events:  make(chan ChangeEvent, 100),
	}, nil
}

// Start registers the watched directories and begins forwarding events
// until ctx is done
func (fw *FileWatcher) Start(ctx context.Context) error {
	dirs, err := fw.watchDirs()
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		if err := fw.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	logging.Info("started watching input", "path", fw.input, "directories", len(dirs))

	go fw.processEvents(ctx)
	return nil
}

// watchDirs lists the directories to register. A single file is watched
// through its parent so editors that replace the file are still seen.
func (fw *FileWatcher) watchDirs() ([]string, error) {
	if !fw.isDir {
		return []string{filepath.Dir(fw.input)}, nil
	}

	var dirs []string
	err := filepath.WalkDir(fw.input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip entries we can't access
		}
		if d.IsDir() {
			if path != fw.input && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk input directory: %w", err)
	}
	return dirs, nil
}

// Relevant reports whether a change to name should trigger a re-run
func (fw *FileWatcher) Relevant(name string) bool {
	name = filepath.Clean(name)
	if !fw.isDir {
		return name == fw.input
	}
	return filepath.Ext(name) == finder.InstanceExt
}

func classify(op fsnotify.Op) (ChangeType, bool) {
	switch {
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return ChangeTypeRemoved, true
	case op.Has(fsnotify.Create), op.Has(fsnotify.Write):
		return ChangeTypeModified, true
	}
	return 0, false
}

// processEvents forwards relevant fsnotify events, one path per event;
// batching is left to the Debouncer
func (fw *FileWatcher) processEvents(ctx context.Context) {
	defer close(fw.events)
	defer fw.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.Relevant(event.Name) {
				continue
			}
			changeType, ok := classify(event.Op)
			if !ok {
				continue
			}
			logging.Debug("input changed", "path", event.Name, "op", event.Op.String())

			select {
			case fw.events <- ChangeEvent{Type: changeType, Paths: []string{event.Name}, Timestamp: time.Now()}:
			case <-ctx.Done():
				return
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			logging.Error("watcher error", "error", err)
		}
	}
}

// Events returns the channel of change events; it is closed when the
// watcher stops
func (fw *FileWatcher) Events() <-chan ChangeEvent {
	return fw.events
}
