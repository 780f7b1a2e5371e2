package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CSVFileName returns "result_<base>.csv", base being the instance name up to ".col"
func CSVFileName(instance string) string {
	base, _, _ := strings.Cut(instance, ".col")
	return "result_" + base + ".csv"
}

// WriteCSV writes the summary table of a report
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)

	records := [][]string{
		{"Instance", r.Instance},
		{"Number of Edges", strconv.Itoa(r.Edges)},
		{"Total Colors Used", strconv.Itoa(r.Colors)},
		{"Execution Time (ms)", strconv.FormatInt(r.ElapsedMillis(), 10)},
	}
	if n := r.Uncolored(); n > 0 {
		records = append(records, []string{"Uncolored Edges", strconv.Itoa(n)})
	}
	records = append(records, []string{}, []string{"Color", "Number of Edges"})
	for _, e := range r.Usage.Entries() {
		records = append(records, []string{strconv.Itoa(e.Color), strconv.Itoa(e.Edges)})
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// SaveCSV writes the report to CSVFileName in dir and returns the path
func SaveCSV(dir string, r *Report) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, CSVFileName(r.Instance))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := WriteCSV(file, r); err != nil {
		_ = file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	return path, nil
}
