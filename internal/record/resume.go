package record

import (
	"github.com/spigell/skillmatch/internal/extract"
)

// SkillFilter keeps the extracted résumé tokens that are recognised skills,
// in order and with duplicates.
type SkillFilter interface {
	Filter(tokens []string) []string
}

// Resume is a parsed candidate résumé.
type Resume struct {
	ID       int      `json:"id"`
	FullText string   `json:"full_text"`
	Skills   []string `json:"skills"`

	SkillCount  int      `json:"skill_count"`
	LowerSkills []string `json:"-"`

	MatchScore float64 `json:"match_score"`
}

// NewResume parses a raw corpus line and keeps only the skills the filter
// recognises. A nil filter keeps nothing. SkillCount is taken from the
// filtered list.
func NewResume(line string, id int, filter SkillFilter) Resume {
	raw := extract.ResumeSkills(extract.Lower(line))

	resume := Resume{
		ID:       id,
		FullText: line,
	}
	if filter != nil {
		resume.Skills = filter.Filter(raw)
	}
	resume.SkillCount = len(resume.Skills)

	resume.LowerSkills = make([]string, len(resume.Skills))
	for i, skill := range resume.Skills {
		resume.LowerSkills[i] = extract.Lower(skill)
	}

	return resume
}

// Clone returns a copy that shares no slices with r.
func (r Resume) Clone() Resume {
	c := r
	c.Skills = cloneStrings(r.Skills)
	c.LowerSkills = cloneStrings(r.LowerSkills)
	return c
}

// HasSkill reports whether skill is one of the résumé's skills, byte for byte.
func (r Resume) HasSkill(skill string) bool {
	for _, s := range r.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
