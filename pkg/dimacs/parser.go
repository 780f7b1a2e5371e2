package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ritzau/edgecolor/pkg/logging"
	"github.com/ritzau/edgecolor/pkg/model"
)

// ParseError reports an edge line that could not be read
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line, trimmed
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: malformed edge %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseFile reads a DIMACS edge-list file.
// The instance name is the file's base name.
func ParseFile(path string) (*model.Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	instance, err := Parse(file, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	instance.Path = path
	return instance, nil
}

// Parse reads DIMACS lines from r.
// Format:
//
//	c free-form comment
//	p edge <vertices> <edges>
//	e <u> <v>
//
// Edges keep file order; that order is their index for the rest of the run.
// Lines whose first token is neither "e" nor "p" are skipped.
func Parse(r io.Reader, name string) (*model.Instance, error) {
	instance := &model.Instance{
		Name:  name,
		Edges: make([]model.Edge, 0),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "e":
			parsed, err := parseEdgeLine.ParseString(name, line)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: err}
			}
			instance.Edges = append(instance.Edges, model.Edge{U: parsed.U, V: parsed.V})

		case "p":
			parsed, err := parseProblemLine.ParseString(name, line)
			if err != nil {
				// The problem line is advisory; the edges are what we color
				logging.Warn("ignoring malformed problem line", "instance", name, "line", lineNo, "error", err)
				continue
			}
			instance.Format = parsed.Format
			instance.DeclaredVertices = parsed.Vertices
			instance.DeclaredEdges = parsed.Edges
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if instance.DeclaredEdges > 0 && instance.DeclaredEdges != len(instance.Edges) {
		logging.Warn("edge count differs from problem line",
			"instance", name,
			"declared", instance.DeclaredEdges,
			"read", len(instance.Edges))
	}

	logging.Debug("parsed instance", "instance", name, "edges", len(instance.Edges), "lines", lineNo)
	return instance, nil
}
