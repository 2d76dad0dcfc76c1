// Package matching scores jobs against résumés and ranks them.
package matching

import (
	"strings"

	"github.com/spigell/skillmatch/internal/extract"
	"github.com/spigell/skillmatch/internal/record"
)

// Weights of the weighted score terms.
const (
	weightCoverage    = 0.4
	weightUtilization = 0.25
	weightMatchBonus  = 0.2
	weightDensity     = 0.15

	densityScale   = 10.0
	tieBreakerUnit = 100000.0
)

// Scorer scores one job against one résumé. Higher is better.
type Scorer interface {
	Name() string
	Score(job record.Job, resume record.Resume) float64
}

// KeywordOverlap counts the keywords found in both texts, ignoring case.
func KeywordOverlap(jobText, resumeText string, keywords Keywords) int {
	job := extract.Lower(jobText)
	resume := extract.Lower(resumeText)

	score := 0
	for _, kw := range keywords {
		kw = extract.Lower(kw)
		if strings.Contains(job, kw) && strings.Contains(resume, kw) {
			score++
		}
	}
	return score
}

// SkillMatches counts equal (job skill, résumé skill) pairs. A skill repeated
// on either side is counted once per pairing.
func SkillMatches(job record.Job, resume record.Resume) int {
	m := 0
	for _, js := range job.Skills {
		for _, rs := range resume.Skills {
			if js == rs {
				m++
			}
		}
	}
	return m
}

// WeightedScore combines job coverage, résumé utilization, a match bonus and
// the job's skill density, plus jobID/100000 so distinct jobs rarely tie.
// It is exactly 0 when either side has no skills.
func WeightedScore(job record.Job, resume record.Resume) float64 {
	sj := len(job.Skills)
	sr := len(resume.Skills)
	if sj == 0 || sr == 0 {
		return 0
	}

	m := float64(SkillMatches(job, resume))
	coverage := m / float64(sj)
	utilization := m / float64(sr)
	bonus := m / float64(max(sj, sr))
	density := float64(sj) / densityScale

	return weightCoverage*coverage +
		weightUtilization*utilization +
		weightMatchBonus*bonus +
		weightDensity*density +
		float64(job.ID)/tieBreakerUnit
}

// SkillCoverage is the share of the job's skills found on the résumé.
func SkillCoverage(job record.Job, resume record.Resume) float64 {
	if len(job.Skills) == 0 {
		return 0
	}
	return float64(SkillMatches(job, resume)) / float64(len(job.Skills))
}

// KeywordScorer scores by keyword overlap of the full texts.
type KeywordScorer struct {
	Keywords Keywords
}

func (KeywordScorer) Name() string { return "keyword" }

func (s KeywordScorer) Score(job record.Job, resume record.Resume) float64 {
	return float64(KeywordOverlap(job.FullText, resume.FullText, s.Keywords))
}

// WeightedScorer scores with WeightedScore.
type WeightedScorer struct{}

func (WeightedScorer) Name() string { return "weighted" }

func (WeightedScorer) Score(job record.Job, resume record.Resume) float64 {
	return WeightedScore(job, resume)
}

// CoverageScorer scores with SkillCoverage.
type CoverageScorer struct{}

func (CoverageScorer) Name() string { return "coverage" }

func (CoverageScorer) Score(job record.Job, resume record.Resume) float64 {
	return SkillCoverage(job, resume)
}
