package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/skillmatch/internal/collection"
	"github.com/spigell/skillmatch/internal/logger"
	"github.com/spigell/skillmatch/internal/record"
	"github.com/spigell/skillmatch/internal/vocabulary"
)

var fixture = Lines{
	Jobs: []string{
		`"Data Analyst needed with experience in Python, SQL, Excel."`,
		`"Machine Learning Engineer needed with experience in Python, TensorFlow."`,
		`"Graphic Designer needed with experience in Figma."`,
	},
	Resumes: []string{
		`"Experienced professional skilled in Python, SQL, Cooking."`,
		`"Experienced professional skilled in Figma, Juggling."`,
	},
}

func TestLoadArrays(t *testing.T) {
	t.Parallel()

	store := LoadArrays(fixture, Options{})

	if store.Jobs.Len() != 3 || store.Resumes.Len() != 2 {
		t.Fatalf("expected 3 jobs and 2 resumes, got %d and %d", store.Jobs.Len(), store.Resumes.Len())
	}

	for i, job := range store.Jobs.ToSlice() {
		if job.ID != i+1 {
			t.Fatalf("expected job id %d, got %d", i+1, job.ID)
		}
	}

	if got := store.Jobs.At(1).Category; got != record.CategoryEngineer {
		t.Fatalf("expected engineer category, got %q", got)
	}

	expectVocab := []string{"python", "sql", "excel", "tensorflow", "figma"}
	got := store.Vocabulary.Skills()
	if len(got) != len(expectVocab) {
		t.Fatalf("expected vocabulary %q, got %q", expectVocab, got)
	}
	for i := range got {
		if got[i] != expectVocab[i] {
			t.Fatalf("vocabulary %d: expected %q, got %q", i, expectVocab[i], got[i])
		}
	}

	first := store.Resumes.At(0)
	if first.SkillCount != 2 || first.HasSkill("cooking") {
		t.Fatalf("expected resume skills filtered by vocabulary, got %q", first.Skills)
	}
	second := store.Resumes.At(1)
	if second.SkillCount != 1 || second.Skills[0] != "figma" {
		t.Fatalf("unexpected second resume skills %q", second.Skills)
	}
}

func TestLoadListsMatchesArrays(t *testing.T) {
	t.Parallel()

	arrays := LoadArrays(fixture, Options{})
	lists := LoadLists(fixture, Options{})

	if lists.Jobs.Len() != arrays.Jobs.Len() {
		t.Fatalf("expected %d jobs, got %d", arrays.Jobs.Len(), lists.Jobs.Len())
	}

	i := 0
	for job := range lists.Jobs.Values() {
		want := arrays.Jobs.At(i)
		if job.ID != want.ID || job.Title != want.Title || job.SkillCount != want.SkillCount {
			t.Fatalf("job %d differs: %+v vs %+v", i, job, want)
		}
		i++
	}

	r, err := lists.Resumes.Get(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.SkillCount != arrays.Resumes.At(0).SkillCount {
		t.Fatalf("expected matching resume skill counts")
	}
}

func TestLoadIntoLogsProgress(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.DebugLevel)
	LoadLists(fixture, Options{ProgressEvery: 1, Logger: zap.New(core)})

	progress := observed.FilterMessage("loading jobs").All()
	if len(progress) != 3 {
		t.Fatalf("expected 3 job progress entries, got %d", len(progress))
	}
	if progress[0].ContextMap()[logger.FieldStorage] != StorageList {
		t.Fatalf("expected storage field %q, got %v", StorageList, progress[0].ContextMap()[logger.FieldStorage])
	}

	if n := observed.FilterMessage("loading resumes").Len(); n != 2 {
		t.Fatalf("expected 2 resume progress entries, got %d", n)
	}

	loaded := observed.FilterMessage("jobs loaded").All()
	if len(loaded) != 1 {
		t.Fatalf("expected a single summary entry, got %d", len(loaded))
	}
	if loaded[0].ContextMap()["vocabulary"] != int64(5) {
		t.Fatalf("expected vocabulary size 5, got %v", loaded[0].ContextMap()["vocabulary"])
	}
}

func TestLoadIntoProgressDisabled(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.DebugLevel)
	LoadArrays(fixture, Options{ProgressEvery: -1, Logger: zap.New(core)})

	if n := observed.FilterMessage("loading jobs").Len(); n != 0 {
		t.Fatalf("expected no progress entries, got %d", n)
	}
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	store := LoadLists(fixture, Options{})
	store.Clear()
	if !store.Jobs.IsEmpty() || !store.Resumes.IsEmpty() {
		t.Fatalf("expected empty store after clear")
	}
	if store.Vocabulary != nil {
		t.Fatalf("expected the vocabulary to be released")
	}

	var nilStore *ArrayStore
	nilStore.Clear()
}

func TestLoadIntoBuildsVocabularyFromLoadedJobs(t *testing.T) {
	t.Parallel()

	jobs := &collection.List[record.Job]{}
	resumes := &collection.Array[record.Resume]{}

	vocab := LoadInto(jobs, resumes, fixture, Options{ProgressEvery: -1})

	expect := vocabulary.Build(jobs).Skills()
	got := vocab.Skills()
	if len(got) != len(expect) {
		t.Fatalf("expected vocabulary %q, got %q", expect, got)
	}
	for i := range got {
		if got[i] != expect[i] {
			t.Fatalf("vocabulary %d: expected %q, got %q", i, expect[i], got[i])
		}
	}

	second := resumes.At(1)
	if len(second.Skills) != 1 || second.Skills[0] != "figma" {
		t.Fatalf("expected resume skills [figma], got %q", second.Skills)
	}
}

func TestReadFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jobs := filepath.Join(dir, "jobs.csv")
	resumes := filepath.Join(dir, "resumes.csv")
	if err := os.WriteFile(jobs, []byte("job_description\n"+fixture.Jobs[0]+"\n"), 0o600); err != nil {
		t.Fatalf("write jobs: %v", err)
	}
	if err := os.WriteFile(resumes, []byte("resume\n"+fixture.Resumes[0]+"\n"), 0o600); err != nil {
		t.Fatalf("write resumes: %v", err)
	}

	lines, err := ReadFiles(jobs, resumes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines.Jobs) != 1 || len(lines.Resumes) != 1 {
		t.Fatalf("expected one line each, got %d and %d", len(lines.Jobs), len(lines.Resumes))
	}

	if _, err := ReadFiles(filepath.Join(dir, "nope.csv"), resumes); err == nil {
		t.Fatalf("expected error for missing jobs file")
	}
}

func TestJobsDumpToTmpFile(t *testing.T) {
	t.Parallel()

	store := LoadArrays(fixture, Options{})
	jobs := JobsOf(store.Jobs)

	path, err := jobs.DumpToTmpFile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { os.Remove(path) })

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}

	var decoded Jobs
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode dump: %v", err)
	}
	if decoded.Len() != 3 {
		t.Fatalf("expected 3 jobs in dump, got %d", decoded.Len())
	}
	if decoded.Items[2].Title != "graphic designer" {
		t.Fatalf("unexpected title %q", decoded.Items[2].Title)
	}
}

func TestJobsReportByCategory(t *testing.T) {
	t.Parallel()

	store := LoadArrays(fixture, Options{})
	jobs := JobsOf(store.Jobs)

	report := jobs.ReportByCategory()

	entries, ok := report["engineer (priority 2)"]
	if !ok {
		t.Fatalf("expected engineer key in report, got %v", report)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["skills"] != "python, tensorflow" {
		t.Fatalf("unexpected skills %q", entries[0]["skills"])
	}
	if entries[0]["id"] != "2" {
		t.Fatalf("unexpected id %q", entries[0]["id"])
	}

	counts := jobs.CategoryCounts()
	if counts[record.CategoryAnalyst] != 1 || counts[record.CategoryDesigner] != 1 || counts[record.CategoryOther] != 0 {
		t.Fatalf("unexpected counts %v", counts)
	}
	if len(counts) != len(record.Categories) {
		t.Fatalf("expected every category present, got %d", len(counts))
	}
}
