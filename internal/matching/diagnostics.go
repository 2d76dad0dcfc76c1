package matching

import (
	"fmt"

	"github.com/spigell/skillmatch/internal/collection"
	"github.com/spigell/skillmatch/internal/record"
	"github.com/spigell/skillmatch/internal/search"
	"github.com/spigell/skillmatch/internal/sorting"
)

// JobDiagnostic shows how one job scores and ranks for a résumé under both
// scoring schemes. Ranks are 1-based.
type JobDiagnostic struct {
	JobID         int     `json:"job_id"`
	Title         string  `json:"title"`
	KeywordScore  int     `json:"keyword_score"`
	WeightedScore float64 `json:"weighted_score"`
	KeywordRank   int     `json:"keyword_rank"`
	WeightedRank  int     `json:"weighted_rank"`
}

// Shift is how many places the job moves up going from the keyword ranking
// to the weighted ranking. Negative means it moves down.
func (d JobDiagnostic) Shift() int {
	return d.KeywordRank - d.WeightedRank
}

// Diagnostics compares the keyword and weighted rankings for one résumé.
// Entries are in job order.
type Diagnostics struct {
	Resume  record.Resume   `json:"resume"`
	Entries []JobDiagnostic `json:"entries"`
}

// Diagnose resolves the résumé at resumeIndex, finds it again by id and
// scores every job against it. jobs is not modified.
func Diagnose(jobs *collection.Array[record.Job], resumes *collection.Array[record.Resume], resumeIndex int, keywords Keywords, alg sorting.Algorithm) (*Diagnostics, error) {
	byIndex, err := resumes.Get(resumeIndex)
	if err != nil {
		return nil, fmt.Errorf("resolving resume: %w", err)
	}

	resume, ok := search.ResumeByID(resumes, byIndex.ID)
	if !ok {
		return nil, fmt.Errorf("resume %d not found by id", byIndex.ID)
	}

	keywordRanks, err := ranks(jobs, resume, KeywordScorer{Keywords: keywords}, alg)
	if err != nil {
		return nil, err
	}
	weightedRanks, err := ranks(jobs, resume, WeightedScorer{}, alg)
	if err != nil {
		return nil, err
	}

	diag := &Diagnostics{
		Resume:  resume.Clone(),
		Entries: make([]JobDiagnostic, 0, jobs.Len()),
	}
	for i, j := range jobs.ToSlice() {
		diag.Entries = append(diag.Entries, JobDiagnostic{
			JobID:         j.ID,
			Title:         j.Title,
			KeywordScore:  KeywordOverlap(j.FullText, resume.FullText, keywords),
			WeightedScore: WeightedScore(j, resume),
			KeywordRank:   keywordRanks[i],
			WeightedRank:  weightedRanks[i],
		})
	}

	return diag, nil
}

// ranks returns the 1-based rank of each job position in jobs.
func ranks(jobs *collection.Array[record.Job], resume record.Resume, scorer Scorer, alg sorting.Algorithm) ([]int, error) {
	type scored struct {
		pos   int
		score float64
	}

	work := &collection.Array[scored]{}
	for i, j := range jobs.ToSlice() {
		work.Push(scored{pos: i, score: scorer.Score(j, resume)})
	}

	byScore := func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	}
	if _, err := sorting.Sort(work, byScore, alg); err != nil {
		return nil, err
	}

	out := make([]int, jobs.Len())
	for rank, s := range work.ToSlice() {
		out[s.pos] = rank + 1
	}
	return out, nil
}
