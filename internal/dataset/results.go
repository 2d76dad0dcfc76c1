package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spigell/skillmatch/internal/collection"
	"github.com/spigell/skillmatch/internal/record"
)

// Jobs is a snapshot of job records, e.g. the result of a search or ranking.
type Jobs struct {
	Items []record.Job `json:"items"`
}

// JobsOf copies every job in seq.
func JobsOf(seq collection.Sequence[record.Job]) *Jobs {
	jobs := &Jobs{Items: make([]record.Job, 0, seq.Len())}
	for j := range seq.Values() {
		jobs.Items = append(jobs.Items, j.Clone())
	}
	return jobs
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

// DumpToTmpFile writes the jobs as indented JSON to a new temp file and
// returns its path.
func (j *Jobs) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "skillmatch_jobs_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(j); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ReportByCategory groups the jobs by category, each entry describing one job.
func (j *Jobs) ReportByCategory() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, job := range j.Items {
		key := fmt.Sprintf("%s (priority %d)", job.Category, job.Priority)
		report[key] = append(report[key], map[string]string{
			"id":          fmt.Sprintf("%d", job.ID),
			"title":       job.Title,
			"skills":      strings.Join(job.Skills, ", "),
			"match score": fmt.Sprintf("%.5f", job.MatchScore),
		})
	}
	return report
}

// CategoryCounts counts jobs per category; every category is present.
func (j *Jobs) CategoryCounts() map[record.Category]int {
	counts := make(map[record.Category]int, len(record.Categories))
	for _, c := range record.Categories {
		counts[c] = 0
	}
	for _, job := range j.Items {
		counts[job.Category]++
	}
	return counts
}
