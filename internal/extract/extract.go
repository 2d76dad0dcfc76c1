// Package extract pulls structured fields out of the fixed sentence patterns
// used by the job and résumé corpora.
package extract

import (
	"strings"
)

const (
	// JobSkillsMarker separates a job title from its comma-separated skills.
	JobSkillsMarker = "needed with experience in"
	// ResumeSkillsMarker introduces the skills list in a résumé line.
	ResumeSkillsMarker = "experienced professional skilled in"

	skillsTerminator = "."
)

// Category keywords in the order they are checked against a title.
var categoryKeywords = []string{"analyst", "engineer", "manager", "developer", "scientist", "designer"}

// OtherCategory is returned when no category keyword is found.
const OtherCategory = "other"

// Lower lowercases ASCII letters only, leaving every other byte untouched.
func Lower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// Trim strips surrounding whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// JobTitle returns the trimmed text before JobSkillsMarker with one leading
// quote removed. It is empty when the marker is missing or starts the line.
func JobTitle(line string) string {
	idx := strings.Index(line, JobSkillsMarker)
	if idx <= 0 {
		return ""
	}

	title := Trim(line[:idx])
	return strings.TrimPrefix(title, `"`)
}

// JobSkills returns the skills listed between JobSkillsMarker and the next period.
func JobSkills(line string) []string {
	return skillsAfter(line, JobSkillsMarker)
}

// ResumeSkills returns the skills listed between ResumeSkillsMarker and the next period.
func ResumeSkills(line string) []string {
	return skillsAfter(line, ResumeSkillsMarker)
}

func skillsAfter(line, marker string) []string {
	start := strings.Index(line, marker)
	if start == -1 {
		return nil
	}
	rest := line[start+len(marker):]

	end := strings.Index(rest, skillsTerminator)
	if end <= 0 {
		return nil
	}

	var skills []string
	for _, token := range strings.Split(rest[:end], ",") {
		if skill := Trim(token); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

// Category classifies a title by the first category keyword it contains.
func Category(title string) string {
	lower := Lower(title)
	for _, keyword := range categoryKeywords {
		if strings.Contains(lower, keyword) {
			return keyword
		}
	}
	return OtherCategory
}
