// Package record holds the Job and Resume entities and the comparison keys
// the sorting and search engines use on them.
package record

import (
	"github.com/spigell/skillmatch/internal/extract"
)

// Category is the closed set of job families derived from a title.
type Category string

const (
	CategoryAnalyst   Category = "analyst"
	CategoryEngineer  Category = "engineer"
	CategoryManager   Category = "manager"
	CategoryDeveloper Category = "developer"
	CategoryScientist Category = "scientist"
	CategoryDesigner  Category = "designer"
	CategoryOther     Category = "other"
)

// Categories lists every category in classification order.
var Categories = []Category{
	CategoryAnalyst,
	CategoryEngineer,
	CategoryManager,
	CategoryDeveloper,
	CategoryScientist,
	CategoryDesigner,
	CategoryOther,
}

// Mid-level is the only experience level the corpus distinguishes.
const defaultExperienceLevel = 2

// Job is a parsed job posting. ID is its identity; MatchScore is scratch
// space overwritten by ranking operations.
type Job struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Skills   []string `json:"skills"`
	FullText string   `json:"full_text"`

	SkillCount      int      `json:"skill_count"`
	TitleLength     int      `json:"title_length"`
	LowerTitle      string   `json:"-"`
	LowerSkills     []string `json:"-"`
	Category        Category `json:"category"`
	ExperienceLevel int      `json:"experience_level"`
	Priority        int      `json:"priority"`

	MatchScore float64 `json:"match_score"`
}

// NewJob parses a raw corpus line. Title and skills are extracted from the
// lowercased line; FullText keeps the line as it was read.
func NewJob(line string, id int) Job {
	lower := extract.Lower(line)

	job := Job{
		ID:              id,
		FullText:        line,
		Title:           extract.JobTitle(lower),
		Skills:          extract.JobSkills(lower),
		ExperienceLevel: defaultExperienceLevel,
	}
	job.derive()

	return job
}

// derive recomputes every field that depends on Title and Skills.
func (j *Job) derive() {
	j.SkillCount = len(j.Skills)
	j.TitleLength = len(j.Title)
	j.LowerTitle = extract.Lower(j.Title)

	j.LowerSkills = make([]string, len(j.Skills))
	for i, skill := range j.Skills {
		j.LowerSkills[i] = extract.Lower(skill)
	}

	j.Category = Category(extract.Category(j.Title))
	j.Priority = CalculatePriority(j.SkillCount, j.Category)
}

// CalculatePriority starts at 1 and adds one for more than five skills and one
// for engineer or scientist roles.
func CalculatePriority(skillCount int, category Category) int {
	priority := 1
	if skillCount > 5 {
		priority++
	}
	if category == CategoryEngineer || category == CategoryScientist {
		priority++
	}
	return priority
}

// Clone returns a copy that shares no slices with j.
func (j Job) Clone() Job {
	c := j
	c.Skills = cloneStrings(j.Skills)
	c.LowerSkills = cloneStrings(j.LowerSkills)
	return c
}

// HasSkill reports whether skill is one of the job's skills, byte for byte.
func (j Job) HasSkill(skill string) bool {
	for _, s := range j.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
