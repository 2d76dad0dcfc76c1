package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spigell/skillmatch/internal/collection"
	"github.com/spigell/skillmatch/internal/record"
)

func sampleJobs() []record.Job {
	return []record.Job{
		{ID: 1, Skills: []string{"python", "sql"}},
		{ID: 2, Skills: []string{"sql", "excel", "Python"}},
		{ID: 3},
		{ID: 4, Skills: []string{"excel", "tableau", "python"}},
	}
}

func TestBuildKeepsFirstOccurrenceOrder(t *testing.T) {
	expect := []string{"python", "sql", "excel", "Python", "tableau"}

	fromArray := Build(collection.NewArray(sampleJobs()...))
	fromList := Build(collection.NewList(sampleJobs()...))

	assert.Equal(t, expect, fromArray.Skills())
	assert.Equal(t, expect, fromList.Skills())
	assert.Equal(t, 5, fromArray.Len())
}

func TestBuildIsCaseSensitive(t *testing.T) {
	v := Build(collection.NewArray(sampleJobs()...))

	assert.True(t, v.Contains("python"))
	assert.True(t, v.Contains("Python"))
	assert.False(t, v.Contains("PYTHON"))
}

func TestBuildEmpty(t *testing.T) {
	v := Build(&collection.Array[record.Job]{})

	assert.Equal(t, 0, v.Len())
	assert.Empty(t, v.Skills())
	assert.False(t, v.Contains("python"))
}

func TestAddAndFilter(t *testing.T) {
	v := New()
	assert.True(t, v.Add("go"))
	assert.False(t, v.Add("go"))

	assert.Equal(t, []string{"go", "go"}, v.Filter([]string{"go", "rust", "go"}))
	assert.Empty(t, v.Filter([]string{"rust"}))
}

func TestNilVocabulary(t *testing.T) {
	var v *Vocabulary

	assert.False(t, v.Contains("go"))
	assert.Equal(t, 0, v.Len())
	assert.Nil(t, v.Skills())
}

func TestResumeSkillsOutsideVocabularyAreDropped(t *testing.T) {
	jobs := collection.NewArray(
		record.NewJob("data analyst needed with experience in sql, excel.", 1),
		record.NewJob("ml engineer needed with experience in python, pytorch.", 2),
	)
	v := Build(jobs)

	resume := record.NewResume("experienced professional skilled in sql, knitting, python.", 1, v)

	assert.Equal(t, []string{"sql", "python"}, resume.Skills)
	assert.Equal(t, 2, resume.SkillCount)
}
