package filtering

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/collection"
	"github.com/spigell/skillmatch/internal/record"
	"github.com/spigell/skillmatch/internal/search"
)

const maxPriority = 3

type titleKeywordFilter struct {
	keyword string
}

// NewTitleKeyword creates a filter that keeps jobs whose title contains the configured keyword.
func NewTitleKeyword() Filter {
	return &titleKeywordFilter{}
}

func (f *titleKeywordFilter) Name() string { return "title_keyword" }

func (f *titleKeywordFilter) Disable(string) {}

func (f *titleKeywordFilter) IsEnabled() bool { return true }

func (f *titleKeywordFilter) Validate(cfg *Config) error {
	f.keyword = ""
	if cfg != nil {
		f.keyword = strings.TrimSpace(cfg.TitleKeyword)
	}
	return nil
}

func (f *titleKeywordFilter) Apply(_ context.Context, deps Deps, jobs *collection.Array[record.Job]) (*collection.Array[record.Job], Step, error) {
	initial := jobs.Len()
	if f.keyword == "" {
		return jobs, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := search.FilterByTitleKeyword(jobs, f.keyword)
	if deps.Logger != nil && kept.Len() < initial {
		deps.Logger.Debug("excluding jobs by title keyword",
			zap.String("keyword", f.keyword),
			zap.Int("jobs_left", kept.Len()),
		)
	}

	return kept, stepOf(initial, kept), nil
}

func (f *titleKeywordFilter) Status() Status {
	details := map[string]string{}
	if f.keyword != "" {
		details["keyword"] = f.keyword
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type skillsFilter struct {
	skills []string
}

// NewSkills creates a filter that keeps jobs listing every configured skill.
// Skills are compared lowercased.
func NewSkills() Filter {
	return &skillsFilter{}
}

func (f *skillsFilter) Name() string { return "skills" }

func (f *skillsFilter) Disable(string) {}

func (f *skillsFilter) IsEnabled() bool { return true }

func (f *skillsFilter) Validate(cfg *Config) error {
	f.skills = nil
	if cfg == nil {
		return nil
	}
	for _, skill := range cfg.Skills {
		if skill = strings.ToLower(strings.TrimSpace(skill)); skill != "" {
			f.skills = append(f.skills, skill)
		}
	}
	return nil
}

func (f *skillsFilter) Apply(_ context.Context, deps Deps, jobs *collection.Array[record.Job]) (*collection.Array[record.Job], Step, error) {
	initial := jobs.Len()
	if len(f.skills) == 0 {
		return jobs, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := search.All(jobs, func(j record.Job) bool {
		for _, skill := range f.skills {
			if !j.HasSkill(skill) {
				return false
			}
		}
		return true
	})
	if deps.Logger != nil && kept.Len() < initial {
		deps.Logger.Debug("excluding jobs by skills",
			zap.Strings("skills", f.skills),
			zap.Int("jobs_left", kept.Len()),
		)
	}

	return kept, stepOf(initial, kept), nil
}

func (f *skillsFilter) Status() Status {
	details := map[string]string{}
	if len(f.skills) > 0 {
		details["skills"] = strings.Join(f.skills, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type categoriesFilter struct {
	categories map[record.Category]struct{}
}

// NewCategories creates a filter that keeps jobs in the configured categories.
func NewCategories() Filter {
	return &categoriesFilter{}
}

func (f *categoriesFilter) Name() string { return "categories" }

func (f *categoriesFilter) Disable(string) {}

func (f *categoriesFilter) IsEnabled() bool { return true }

func (f *categoriesFilter) Validate(cfg *Config) error {
	f.categories = nil
	if cfg == nil || len(cfg.Categories) == 0 {
		return nil
	}

	known := make(map[record.Category]struct{}, len(record.Categories))
	for _, c := range record.Categories {
		known[c] = struct{}{}
	}

	f.categories = make(map[record.Category]struct{}, len(cfg.Categories))
	for _, c := range cfg.Categories {
		c = record.Category(strings.ToLower(strings.TrimSpace(string(c))))
		if _, ok := known[c]; !ok {
			return fmt.Errorf("unknown category %q", c)
		}
		f.categories[c] = struct{}{}
	}
	return nil
}

func (f *categoriesFilter) Apply(_ context.Context, _ Deps, jobs *collection.Array[record.Job]) (*collection.Array[record.Job], Step, error) {
	initial := jobs.Len()
	if len(f.categories) == 0 {
		return jobs, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := search.All(jobs, func(j record.Job) bool {
		_, ok := f.categories[j.Category]
		return ok
	})
	return kept, stepOf(initial, kept), nil
}

func (f *categoriesFilter) Status() Status {
	details := map[string]string{}
	if len(f.categories) > 0 {
		names := make([]string, 0, len(f.categories))
		for _, c := range record.Categories {
			if _, ok := f.categories[c]; ok {
				names = append(names, string(c))
			}
		}
		details["categories"] = strings.Join(names, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type minPriorityFilter struct {
	min int
}

// NewMinPriority creates a filter that drops jobs below the configured priority.
func NewMinPriority() Filter {
	return &minPriorityFilter{}
}

func (f *minPriorityFilter) Name() string { return "min_priority" }

func (f *minPriorityFilter) Disable(string) {}

func (f *minPriorityFilter) IsEnabled() bool { return true }

func (f *minPriorityFilter) Validate(cfg *Config) error {
	f.min = 0
	if cfg == nil {
		return nil
	}
	if cfg.MinPriority < 0 || cfg.MinPriority > maxPriority {
		return fmt.Errorf("minimum priority must be between 0 and %d, got %d", maxPriority, cfg.MinPriority)
	}
	f.min = cfg.MinPriority
	return nil
}

func (f *minPriorityFilter) Apply(_ context.Context, _ Deps, jobs *collection.Array[record.Job]) (*collection.Array[record.Job], Step, error) {
	initial := jobs.Len()
	if f.min <= 1 {
		return jobs, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := search.All(jobs, func(j record.Job) bool { return j.Priority >= f.min })
	return kept, stepOf(initial, kept), nil
}

func (f *minPriorityFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{"minimum": strconv.Itoa(f.min)},
	}
}

type minScoreFilter struct {
	disabled bool
	reason   string
	min      float64
}

// NewMinScore creates a filter that scores every job against the résumé in
// Deps and keeps those scoring at least the configured minimum. Kept jobs
// carry their score in MatchScore.
func NewMinScore() Filter {
	return &minScoreFilter{}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *minScoreFilter) IsEnabled() bool { return !f.disabled }

func (f *minScoreFilter) Validate(cfg *Config) error {
	f.min = 0
	if cfg == nil {
		return nil
	}
	if cfg.MinScore < 0 {
		return fmt.Errorf("minimum score must not be negative, got %v", cfg.MinScore)
	}
	f.min = cfg.MinScore
	return nil
}

func (f *minScoreFilter) Apply(_ context.Context, deps Deps, jobs *collection.Array[record.Job]) (*collection.Array[record.Job], Step, error) {
	initial := jobs.Len()
	if deps.Resume == nil || deps.Scorer == nil {
		if f.min > 0 {
			return jobs, Step{}, fmt.Errorf("resume and scorer are required for a minimum score")
		}
		if deps.Logger != nil {
			deps.Logger.Info("no resume to score against; skipping min_score filter")
		}
		return jobs, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := &collection.Array[record.Job]{}
	for j := range jobs.Values() {
		c := j.Clone()
		c.MatchScore = deps.Scorer.Score(c, *deps.Resume)
		if c.MatchScore >= f.min {
			kept.Push(c)
		}
	}

	if deps.Logger != nil {
		deps.Logger.Debug("scored jobs",
			zap.String("scorer", deps.Scorer.Name()),
			zap.Int("resume_id", deps.Resume.ID),
			zap.Float64("minimum", f.min),
			zap.Int("jobs_left", kept.Len()),
		)
	}

	return kept, stepOf(initial, kept), nil
}

func (f *minScoreFilter) Status() Status {
	details := map[string]string{
		"minimum": strconv.FormatFloat(f.min, 'f', 2, 64),
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
