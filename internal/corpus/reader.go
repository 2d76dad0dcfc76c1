// Package corpus reads the job and résumé CSV files.
package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLines returns every data row of the CSV file at path with the header
// row skipped. Quoted fields are unquoted and the fields of a row are joined
// back with commas, so each description is one line of text.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus %q: %w", path, err)
	}
	defer f.Close()

	lines, err := Read(f, 0)
	if err != nil {
		return nil, fmt.Errorf("reading corpus %q: %w", path, err)
	}
	return lines, nil
}

// Read parses CSV rows from r, skipping the header. When limit is positive at
// most limit rows are returned.
func Read(r io.Reader, limit int) ([]string, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var lines []string
	header := true
	for {
		if limit > 0 && len(lines) == limit {
			break
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if header {
			header = false
			continue
		}

		line := strings.TrimSpace(strings.Join(record, ","))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}
