package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type skillSet map[string]bool

func (s skillSet) Filter(tokens []string) []string {
	var kept []string
	for _, token := range tokens {
		if s[token] {
			kept = append(kept, token)
		}
	}
	return kept
}

func TestNewJob(t *testing.T) {
	line := `"Senior Data Engineer needed with experience in Python, SQL, Spark, Airflow, AWS, Docker. Remote friendly."`
	job := NewJob(line, 7)

	assert.Equal(t, 7, job.ID)
	assert.Equal(t, line, job.FullText)
	assert.Equal(t, "senior data engineer", job.Title)
	assert.Equal(t, "senior data engineer", job.LowerTitle)
	assert.Equal(t, len(job.Title), job.TitleLength)
	assert.Equal(t, []string{"python", "sql", "spark", "airflow", "aws", "docker"}, job.Skills)
	assert.Equal(t, job.Skills, job.LowerSkills)
	assert.Equal(t, 6, job.SkillCount)
	assert.Equal(t, CategoryEngineer, job.Category)
	assert.Equal(t, 3, job.Priority)
	assert.Equal(t, 2, job.ExperienceLevel)
	assert.Zero(t, job.MatchScore)
}

func TestNewJobUnparseableLine(t *testing.T) {
	job := NewJob("completely unstructured text", 1)

	assert.Empty(t, job.Title)
	assert.Empty(t, job.Skills)
	assert.Equal(t, 0, job.SkillCount)
	assert.Equal(t, CategoryOther, job.Category)
	assert.Equal(t, 1, job.Priority)
}

func TestCalculatePriority(t *testing.T) {
	tests := []struct {
		name     string
		skills   int
		category Category
		expect   int
	}{
		{name: "base", skills: 2, category: CategoryDesigner, expect: 1},
		{name: "exactly five skills is not a bonus", skills: 5, category: CategoryManager, expect: 1},
		{name: "many skills", skills: 6, category: CategoryAnalyst, expect: 2},
		{name: "scientist", skills: 1, category: CategoryScientist, expect: 2},
		{name: "both bonuses", skills: 9, category: CategoryEngineer, expect: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, CalculatePriority(tt.skills, tt.category))
		})
	}
}

func TestNewResumeFiltersByVocabulary(t *testing.T) {
	vocab := skillSet{"python": true, "sql": true}
	line := "Experienced professional skilled in Python, Basket Weaving, SQL, python. Loves data."

	resume := NewResume(line, 3, vocab)

	assert.Equal(t, 3, resume.ID)
	assert.Equal(t, []string{"python", "sql", "python"}, resume.Skills)
	assert.Equal(t, 3, resume.SkillCount)
	assert.NotContains(t, resume.Skills, "basket weaving")
	assert.Equal(t, resume.Skills, resume.LowerSkills)
}

func TestNewResumeWithoutFilterKeepsNothing(t *testing.T) {
	resume := NewResume("experienced professional skilled in go, rust.", 1, nil)

	assert.Empty(t, resume.Skills)
	assert.Equal(t, 0, resume.SkillCount)
}

func TestCloneDoesNotShareSlices(t *testing.T) {
	job := NewJob("developer needed with experience in go, sql.", 1)
	cp := job.Clone()
	cp.Skills[0] = "cobol"
	cp.LowerSkills[0] = "cobol"
	assert.Equal(t, "go", job.Skills[0])
	assert.Equal(t, "go", job.LowerSkills[0])

	resume := NewResume("experienced professional skilled in go.", 1, skillSet{"go": true})
	rc := resume.Clone()
	rc.Skills[0] = "perl"
	assert.Equal(t, "go", resume.Skills[0])
}

func TestComparatorsAndPredicates(t *testing.T) {
	a := Job{ID: 1, Title: "analyst", SkillCount: 3, MatchScore: 0.5, LowerTitle: "analyst"}
	b := Job{ID: 2, Title: "engineer", SkillCount: 3, MatchScore: 0.9, LowerTitle: "engineer", Skills: []string{"go"}}

	assert.Negative(t, JobsByTitle(a, b))
	assert.Zero(t, JobsBySkillCount(a, b))
	assert.Positive(t, JobsByMatchScore(b, a))

	require.True(t, TitleEquals("engineer")(b))
	require.False(t, TitleEquals("Engineer")(b))
	require.True(t, TitleContains("GINE")(b))
	require.True(t, JobHasSkill("go")(b))
	require.False(t, JobHasSkill("Go")(b))

	r := Resume{ID: 4, Skills: []string{"sql"}, SkillCount: 1}
	require.True(t, ResumeHasSkill("sql")(r))
	require.True(t, ResumeIDEquals(4)(r))
	assert.Zero(t, ResumesBySkillCount(r, r))
}
