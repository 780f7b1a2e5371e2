package finder

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// InstanceExt is the extension of DIMACS instance files
const InstanceExt = ".col"

// FindInstances walks dir and returns every *.col file, sorted by path.
// Hidden directories are skipped.
func FindInstances(dir string) ([]string, error) {
	var instances []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) == InstanceExt {
			instances = append(instances, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(instances)
	return instances, nil
}

// ResolveInput expands the configured input into instance paths: a file is
// returned as is (whatever its extension), a directory is searched.
func ResolveInput(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}
	return FindInstances(input)
}
