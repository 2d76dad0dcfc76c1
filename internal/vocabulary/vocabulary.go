// Package vocabulary builds the controlled set of skills recognised across
// all job postings.
package vocabulary

import (
	"github.com/spigell/skillmatch/internal/collection"
	"github.com/spigell/skillmatch/internal/record"
)

// Vocabulary is an insertion-ordered set of skills. Membership is byte-exact,
// so "Python" and "python" are different entries. A hash index backs
// membership; Skills keeps the insertion order.
type Vocabulary struct {
	skills *collection.Array[string]
	index  map[string]struct{}
}

// New returns an empty vocabulary.
func New() *Vocabulary {
	return &Vocabulary{
		skills: &collection.Array[string]{},
		index:  make(map[string]struct{}),
	}
}

// Build collects every job skill in traversal order: jobs first, then each
// job's skills. The first occurrence of a token wins.
func Build(jobs collection.Sequence[record.Job]) *Vocabulary {
	v := New()
	for job := range jobs.Values() {
		for _, skill := range job.Skills {
			v.Add(skill)
		}
	}
	return v
}

// Add inserts skill unless an identical token is already present. It reports
// whether the skill was new.
func (v *Vocabulary) Add(skill string) bool {
	if _, ok := v.index[skill]; ok {
		return false
	}
	v.index[skill] = struct{}{}
	v.skills.Push(skill)
	return true
}

var _ record.SkillFilter = (*Vocabulary)(nil)

// Contains reports whether skill is in the vocabulary.
func (v *Vocabulary) Contains(skill string) bool {
	if v == nil {
		return false
	}
	_, ok := v.index[skill]
	return ok
}

func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return v.skills.Len()
}

// Skills returns the vocabulary in first-occurrence order.
func (v *Vocabulary) Skills() []string {
	if v == nil {
		return nil
	}
	return v.skills.ToSlice()
}

// Filter keeps the tokens present in the vocabulary, preserving order and
// duplicates. It implements record.SkillFilter.
func (v *Vocabulary) Filter(tokens []string) []string {
	var kept []string
	for _, token := range tokens {
		if v.Contains(token) {
			kept = append(kept, token)
		}
	}
	return kept
}
