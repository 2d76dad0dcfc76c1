package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect []string
	}{
		{
			name:   "header skipped",
			input:  "job_description\nData Analyst needed with experience in SQL.\n",
			expect: []string{"Data Analyst needed with experience in SQL."},
		},
		{
			name:   "quoted field with commas",
			input:  "job_description\n\"Data Analyst needed with experience in Python, SQL, Excel.\"\n",
			expect: []string{"Data Analyst needed with experience in Python, SQL, Excel."},
		},
		{
			name:   "unquoted commas are rejoined",
			input:  "resume\nExperienced professional skilled in Go, Docker.\n",
			expect: []string{"Experienced professional skilled in Go, Docker."},
		},
		{
			name:   "blank rows dropped",
			input:  "h\na\n\n   \nb\n",
			expect: []string{"a", "b"},
		},
		{
			name:   "limit",
			input:  "h\na\nb\nc\n",
			limit:  2,
			expect: []string{"a", "b"},
		},
		{
			name:  "header only",
			input: "job_description\n",
		},
		{
			name:  "empty",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Read(strings.NewReader(tt.input), tt.limit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.expect) {
				t.Fatalf("expected %d lines, got %d: %q", len(tt.expect), len(got), got)
			}
			for i := range got {
				if got[i] != tt.expect[i] {
					t.Fatalf("line %d: expected %q, got %q", i, tt.expect[i], got[i])
				}
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "jobs.csv")
	content := "job_description\n\"UX Designer needed with experience in Figma, Sketch.\"\n\"Project Manager needed with experience in Jira.\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got))
	}
	if got[1] != "Project Manager needed with experience in Jira." {
		t.Fatalf("unexpected second line %q", got[1])
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "missing.csv") {
		t.Fatalf("expected error to name the file, got %q", err)
	}
}
