// Package search implements linear and binary search over the skillmatch
// containers. Absence is a normal result and never an error.
package search

import (
	"strings"

	"github.com/spigell/skillmatch/internal/collection"
	"github.com/spigell/skillmatch/internal/record"
)

// First returns the first element matching pred and its position.
func First[T any](seq collection.Sequence[T], pred func(T) bool) (T, int, bool) {
	i := 0
	for v := range seq.Values() {
		if pred(v) {
			return v, i, true
		}
		i++
	}
	var zero T
	return zero, -1, false
}

// FirstNode returns the first node whose value matches pred, or nil. The
// node stays valid across list sorts, which relink nodes in place.
func FirstNode[T any](l *collection.List[T], pred func(T) bool) *collection.Node[T] {
	for n := l.Front(); n != nil; n = n.Next() {
		if pred(n.Value) {
			return n
		}
	}
	return nil
}

// All copies every matching element into a new array, in order.
func All[T any](seq collection.Sequence[T], pred func(T) bool) *collection.Array[T] {
	out := &collection.Array[T]{}
	collect(seq, pred, out)
	return out
}

func collect[T any](seq collection.Sequence[T], pred func(T) bool, dst collection.Pusher[T]) {
	for v := range seq.Values() {
		if pred(v) {
			dst.Push(cloneValue(v))
		}
	}
}

func cloneValue[T any](v T) T {
	if c, ok := any(v).(collection.Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// JobIndex is random access over jobs, satisfied by *collection.Array[record.Job].
type JobIndex interface {
	Len() int
	At(i int) record.Job
}

// BinaryByTitle finds title in jobs, which must already be sorted ascending
// by title. The order is not verified: on unsorted input the result is
// meaningless but the search still terminates.
func BinaryByTitle(jobs JobIndex, title string) (int, bool) {
	low, high := 0, jobs.Len()-1
	for low <= high {
		mid := low + (high-low)/2

		switch c := strings.Compare(jobs.At(mid).Title, title); {
		case c == 0:
			return mid, true
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return -1, false
}

// FilterByTitleKeyword returns the jobs whose title contains keyword, ignoring case.
func FilterByTitleKeyword(jobs collection.Sequence[record.Job], keyword string) *collection.Array[record.Job] {
	return All(jobs, record.TitleContains(keyword))
}

// JobByTitle returns the first job titled exactly title.
func JobByTitle(jobs collection.Sequence[record.Job], title string) (record.Job, bool) {
	j, _, ok := First(jobs, record.TitleEquals(title))
	return j, ok
}

// JobNodeByTitle returns the list node of the first job titled exactly
// title, or nil.
func JobNodeByTitle(jobs *collection.List[record.Job], title string) *collection.Node[record.Job] {
	return FirstNode(jobs, record.TitleEquals(title))
}

// JobsByTitle returns every job titled exactly title.
func JobsByTitle(jobs collection.Sequence[record.Job], title string) *collection.Array[record.Job] {
	return All(jobs, record.TitleEquals(title))
}

// JobsBySkill returns every job listing skill.
func JobsBySkill(jobs collection.Sequence[record.Job], skill string) *collection.Array[record.Job] {
	return All(jobs, record.JobHasSkill(skill))
}

// ResumesBySkill returns every résumé listing skill.
func ResumesBySkill(resumes collection.Sequence[record.Resume], skill string) *collection.Array[record.Resume] {
	return All(resumes, record.ResumeHasSkill(skill))
}

// ResumeByID returns the résumé with the given id.
func ResumeByID(resumes collection.Sequence[record.Resume], id int) (record.Resume, bool) {
	r, _, ok := First(resumes, record.ResumeIDEquals(id))
	return r, ok
}
