package filtering

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/skillmatch/internal/collection"
	"github.com/spigell/skillmatch/internal/matching"
	"github.com/spigell/skillmatch/internal/record"
)

func fixtureJobs() *collection.Array[record.Job] {
	return collection.NewArray(
		record.NewJob(`"Data Analyst needed with experience in Python, SQL."`, 1),
		record.NewJob(`"Software Engineer needed with experience in Go, Python, Docker, Kubernetes, Terraform, AWS."`, 2),
		record.NewJob(`"Data Scientist needed with experience in Python, Statistics."`, 3),
		record.NewJob(`"Product Manager needed with experience in Jira."`, 4),
	)
}

func ids(jobs *collection.Array[record.Job]) []int {
	out := make([]int, 0, jobs.Len())
	for j := range jobs.Values() {
		out = append(out, j.ID)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRunAppliesStepsInOrder(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.InfoLevel)
	deps := Deps{Logger: zap.New(core)}

	cfg := &Config{
		TitleKeyword: "data",
		Skills:       []string{"python"},
		MinPriority:  2,
	}

	input := fixtureJobs()
	got, err := Run(context.Background(), cfg, deps, Steps(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if expect := []int{3}; !equalInts(ids(got), expect) {
		t.Fatalf("expected %v, got %v", expect, ids(got))
	}
	if input.Len() != 4 {
		t.Fatalf("expected input untouched, got %d jobs", input.Len())
	}

	steps := observed.FilterMessage("filter step").All()
	if len(steps) != len(Steps()) {
		t.Fatalf("expected %d step entries, got %d", len(Steps()), len(steps))
	}

	first := steps[0].ContextMap()
	if first["name"] != "title_keyword" || first["initial"] != int64(4) || first["dropped"] != int64(2) || first["left"] != int64(2) {
		t.Fatalf("unexpected first step fields: %v", first)
	}

	priority := steps[3].ContextMap()
	if priority["name"] != "min_priority" || priority["left"] != int64(1) {
		t.Fatalf("unexpected priority step fields: %v", priority)
	}
}

func TestRunWithoutConfigKeepsEverything(t *testing.T) {
	t.Parallel()

	got, err := Run(context.Background(), nil, Deps{}, Steps(), fixtureJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Len() != 4 {
		t.Fatalf("expected all jobs kept, got %d", got.Len())
	}
}

func TestRunValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cfg    *Config
		expect string
	}{
		{name: "unknown category", cfg: &Config{Categories: []record.Category{"wizard"}}, expect: "categories: unknown category"},
		{name: "priority too high", cfg: &Config{MinPriority: 7}, expect: "min_priority:"},
		{name: "negative score", cfg: &Config{MinScore: -1}, expect: "min_score:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Run(context.Background(), tt.cfg, Deps{}, Steps(), fixtureJobs())
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.HasPrefix(err.Error(), tt.expect) {
				t.Fatalf("expected error starting with %q, got %q", tt.expect, err)
			}
		})
	}
}

func TestCategoriesFilter(t *testing.T) {
	t.Parallel()

	cfg := &Config{Categories: []record.Category{" Scientist ", "manager"}}
	got, err := Run(context.Background(), cfg, Deps{}, []Filter{NewCategories()}, fixtureJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expect := []int{3, 4}; !equalInts(ids(got), expect) {
		t.Fatalf("expected %v, got %v", expect, ids(got))
	}
}

func TestMinScoreFilter(t *testing.T) {
	t.Parallel()

	resume := record.Resume{ID: 9, Skills: []string{"python", "sql"}}
	deps := Deps{Resume: &resume, Scorer: matching.WeightedScorer{}}

	input := fixtureJobs()
	got, err := Run(context.Background(), &Config{MinScore: 0.5}, deps, []Filter{NewMinScore()}, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if expect := []int{1}; !equalInts(ids(got), expect) {
		t.Fatalf("expected %v, got %v", expect, ids(got))
	}
	if got.At(0).MatchScore < 0.5 {
		t.Fatalf("expected score carried on kept job, got %v", got.At(0).MatchScore)
	}
	if input.At(0).MatchScore != 0 {
		t.Fatalf("expected input scores untouched, got %v", input.At(0).MatchScore)
	}
}

func TestMinScoreFilterRequiresResume(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), &Config{MinScore: 0.1}, Deps{}, []Filter{NewMinScore()}, fixtureJobs())
	if err == nil {
		t.Fatalf("expected error when no resume is supplied")
	}

	got, err := Run(context.Background(), &Config{}, Deps{}, []Filter{NewMinScore()}, fixtureJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Len() != 4 {
		t.Fatalf("expected pass-through without a minimum, got %d", got.Len())
	}
}

func TestDisableByNameAndDescribe(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.InfoLevel)
	steps := Steps()
	DisableByName(steps, "min_score", "no resume selected")

	cfg := &Config{MinScore: 0.9, Skills: []string{"jira"}}
	got, err := Run(context.Background(), cfg, Deps{Logger: zap.New(core)}, steps, fixtureJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expect := []int{4}; !equalInts(ids(got), expect) {
		t.Fatalf("expected %v, got %v", expect, ids(got))
	}

	disabled := observed.FilterMessage("filter disabled").All()
	if len(disabled) != 1 || disabled[0].ContextMap()["name"] != "min_score" {
		t.Fatalf("expected min_score disabled entry, got %v", disabled)
	}

	statuses := Describe(steps)
	if len(statuses) != len(steps) {
		t.Fatalf("expected %d statuses, got %d", len(steps), len(statuses))
	}

	last := statuses[len(statuses)-1]
	if last.Name != "min_score" || last.Enabled || last.Reason != "no resume selected" {
		t.Fatalf("unexpected min_score status: %+v", last)
	}
	if statuses[1].Details["skills"] != "jira" {
		t.Fatalf("unexpected skills details: %v", statuses[1].Details)
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Run(ctx, nil, Deps{}, Steps(), fixtureJobs()); err == nil {
		t.Fatalf("expected context error")
	}
}
