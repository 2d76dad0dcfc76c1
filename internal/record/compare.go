package record

import (
	"cmp"
	"strings"
)

// Comparators return a negative number when a sorts before b, zero when the
// keys are equal and a positive number otherwise. All are ascending.

func JobsByTitle(a, b Job) int {
	return strings.Compare(a.Title, b.Title)
}

func JobsBySkillCount(a, b Job) int {
	return cmp.Compare(a.SkillCount, b.SkillCount)
}

func JobsByMatchScore(a, b Job) int {
	return cmp.Compare(a.MatchScore, b.MatchScore)
}

func ResumesBySkillCount(a, b Resume) int {
	return cmp.Compare(a.SkillCount, b.SkillCount)
}

// Predicates used by the search engine.

// TitleEquals matches jobs whose title is exactly title.
func TitleEquals(title string) func(Job) bool {
	return func(j Job) bool { return j.Title == title }
}

// TitleContains matches jobs whose lowercased title contains the lowercased keyword.
func TitleContains(keyword string) func(Job) bool {
	lower := strings.ToLower(keyword)
	return func(j Job) bool { return strings.Contains(j.LowerTitle, lower) }
}

// JobHasSkill matches jobs listing skill.
func JobHasSkill(skill string) func(Job) bool {
	return func(j Job) bool { return j.HasSkill(skill) }
}

// ResumeHasSkill matches résumés listing skill.
func ResumeHasSkill(skill string) func(Resume) bool {
	return func(r Resume) bool { return r.HasSkill(skill) }
}

// ResumeIDEquals matches the résumé with the given id.
func ResumeIDEquals(id int) func(Resume) bool {
	return func(r Resume) bool { return r.ID == id }
}
