package matching

import (
	"github.com/spigell/skillmatch/internal/collection"
	"github.com/spigell/skillmatch/internal/record"
	"github.com/spigell/skillmatch/internal/sorting"
)

var byScoreDesc = sorting.Reverse[record.Job](record.JobsByMatchScore)

// ScoreAll overwrites MatchScore of every job in place.
func ScoreAll(jobs *collection.Array[record.Job], resume record.Resume, scorer Scorer) {
	for i := 0; i < jobs.Len(); i++ {
		j := jobs.At(i)
		j.MatchScore = scorer.Score(j, resume)
		jobs.Put(i, j)
	}
}

// ScoreAllList overwrites MatchScore of every job in place.
func ScoreAllList(jobs *collection.List[record.Job], resume record.Resume, scorer Scorer) {
	for n := range jobs.Nodes() {
		n.Value.MatchScore = scorer.Score(n.Value, resume)
	}
}

// RankByKeywords writes each job's keyword overlap with resume into
// MatchScore and sorts jobs descending by it.
func RankByKeywords(jobs *collection.Array[record.Job], resume record.Resume, keywords Keywords, alg sorting.Algorithm) (sorting.Stats, error) {
	ScoreAll(jobs, resume, KeywordScorer{Keywords: keywords})
	return sorting.Sort(jobs, byScoreDesc, alg)
}

// RankListByKeywords is RankByKeywords for a list, sorted with linked bubble sort.
func RankListByKeywords(jobs *collection.List[record.Job], resume record.Resume, keywords Keywords) sorting.Stats {
	ScoreAllList(jobs, resume, KeywordScorer{Keywords: keywords})
	return sorting.BubbleList(jobs, byScoreDesc)
}

// TopMatches scores a copy of every job with WeightedScore, sorts the copies
// descending and returns the first topN. The input is left untouched. A topN
// larger than the collection returns every job; topN <= 0 returns none.
func TopMatches(jobs collection.Sequence[record.Job], resume record.Resume, topN int, alg sorting.Algorithm) ([]record.Job, error) {
	if topN <= 0 {
		return nil, nil
	}

	scored := &collection.Array[record.Job]{}
	for j := range jobs.Values() {
		c := j.Clone()
		c.MatchScore = WeightedScore(c, resume)
		scored.Push(c)
	}

	if _, err := sorting.Sort(scored, byScoreDesc, alg); err != nil {
		return nil, err
	}

	return head(scored, topN), nil
}

// TopMatchesList is TopMatches for a list, sorted with linked bubble sort.
func TopMatchesList(jobs *collection.List[record.Job], resume record.Resume, topN int) []record.Job {
	if topN <= 0 {
		return nil
	}

	scored := jobs.Clone()
	ScoreAllList(scored, resume, WeightedScorer{})
	sorting.BubbleList(scored, byScoreDesc)

	return head(scored, topN)
}

func head(seq collection.Sequence[record.Job], n int) []record.Job {
	out := make([]record.Job, 0, min(n, seq.Len()))
	for j := range seq.Values() {
		if len(out) == n {
			break
		}
		out = append(out, j)
	}
	return out
}

// BestKeywordScores copies every job with MatchScore set to its best keyword
// overlap against any résumé. Jobs keep their input order.
func BestKeywordScores(jobs collection.Sequence[record.Job], resumes collection.Sequence[record.Resume], keywords Keywords) *collection.Array[record.Job] {
	out := &collection.Array[record.Job]{}
	for j := range jobs.Values() {
		best := 0
		for r := range resumes.Values() {
			best = max(best, KeywordOverlap(j.FullText, r.FullText, keywords))
		}

		c := j.Clone()
		c.MatchScore = float64(best)
		out.Push(c)
	}
	return out
}
