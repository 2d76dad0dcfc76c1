package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/dataset"
	"github.com/spigell/skillmatch/internal/matching"
	"github.com/spigell/skillmatch/internal/record"
	"github.com/spigell/skillmatch/internal/sorting"
)

const (
	PromptReload           = "Reload data"
	PromptSample           = "Show sample data"
	PromptSort             = "Sort"
	PromptSearch           = "Search"
	PromptTopMatches       = "Top matches for a resume"
	PromptKeywordRanking   = "Rank jobs by keywords for a resume"
	PromptBestKeywords     = "Best keyword score of every job"
	PromptDiagnostics      = "Diagnostics for a resume"
	PromptFilter           = "Filter jobs"
	PromptBenchmark        = "Performance comparison"
	PromptReportByCategory = "Report last result by category"
	PromptResultToFile     = "Dump last result to file"
	PromptExit             = "Exit"
	PromptBack             = "back"
)

var errExit = errors.New("exit requested")

var menu = promptui.Select{
	Label: "Choose an action",
	Items: []string{
		PromptReload,
		PromptSample,
		PromptSort,
		PromptSearch,
		PromptTopMatches,
		PromptKeywordRanking,
		PromptBestKeywords,
		PromptDiagnostics,
		PromptFilter,
		PromptBenchmark,
		PromptReportByCategory,
		PromptResultToFile,
		PromptExit,
	},
	Size: 13,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load the corpora and explore them from an interactive menu",
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// run is the interactive entry point.
func run() {
	s := newSession()
	s.logger.Info("starting the skillmatch", zap.String("version", version))

	s.mustLoad(true)
	s.logger.Info("data loaded",
		zap.Int("jobs", s.arrays.Jobs.Len()),
		zap.Int("resumes", s.arrays.Resumes.Len()),
		zap.Int("vocabulary", s.arrays.Vocabulary.Len()),
	)

	var last *dataset.Jobs
	for {
		_, action, err := menu.Run()
		if err != nil {
			s.logger.Fatal("exiting", zap.Error(err))
		}

		result, err := s.handleAction(action, last)
		if err != nil {
			if errors.Is(err, errExit) {
				return
			}
			if errors.Is(err, promptui.ErrInterrupt) {
				s.logger.Info("exiting", zap.String("reason", "interrupted"))
				return
			}
			s.logger.Error("action failed", zap.String("action", action), zap.Error(err))
			continue
		}

		if result != nil {
			last = result
			s.logger.Info("current result", zap.Int("count", last.Len()))
		}
	}
}

// handleAction runs one menu action. It returns the jobs it produced, if any.
func (s *session) handleAction(action string, last *dataset.Jobs) (*dataset.Jobs, error) {
	switch action {
	case PromptReload:
		if err := s.load(true); err != nil {
			return nil, err
		}
		s.logger.Info("data reloaded",
			zap.Int("jobs", s.arrays.Jobs.Len()),
			zap.Int("resumes", s.arrays.Resumes.Len()),
		)
		return nil, nil

	case PromptSample:
		printJobs(os.Stdout, firstN(s.arrays.Jobs.ToSlice(), 5))
		printResumes(os.Stdout, firstN(s.arrays.Resumes.ToSlice(), 5))
		printVocabulary(os.Stdout, s.vocab(), 10)
		return nil, nil

	case PromptSort:
		return nil, s.sortMenu()

	case PromptSearch:
		return s.searchMenu()

	case PromptTopMatches, PromptKeywordRanking:
		id, err := askInt("Resume id", 1)
		if err != nil {
			return nil, err
		}
		topN, err := askInt("How many", s.config.Match.TopN)
		if err != nil {
			return nil, err
		}

		jobs, err := s.match(id, topN, action == PromptKeywordRanking)
		if err != nil {
			return nil, err
		}
		printJobs(os.Stdout, jobs)
		return &dataset.Jobs{Items: jobs}, nil

	case PromptBestKeywords:
		scored := matching.BestKeywordScores(s.arrays.Jobs, s.arrays.Resumes, s.keywords)
		if _, err := sorting.Sort(scored, sorting.Reverse[record.Job](record.JobsByMatchScore), s.config.Sort.Algorithm); err != nil {
			return nil, err
		}
		printJobs(os.Stdout, firstN(scored.ToSlice(), s.config.Match.TopN))
		return dataset.JobsOf(scored), nil

	case PromptDiagnostics:
		index, err := askInt("Resume index (zero-based)", 0)
		if err != nil {
			return nil, err
		}
		diag, err := matching.Diagnose(s.arrays.Jobs, s.arrays.Resumes, index, s.keywords, s.config.Sort.Algorithm)
		if err != nil {
			return nil, err
		}
		printDiagnostics(os.Stdout, diag)
		return nil, nil

	case PromptFilter:
		id, err := askInt("Resume id for score filtering (0 to skip)", 0)
		if err != nil {
			return nil, err
		}
		jobs, err := s.filter(context.Background(), id, "weighted")
		if err != nil {
			return nil, err
		}
		printJobs(os.Stdout, firstN(jobs.ToSlice(), s.config.Match.TopN))
		return dataset.JobsOf(jobs), nil

	case PromptBenchmark:
		printBench(os.Stdout, s.bench(0))
		return nil, nil

	case PromptReportByCategory:
		if last == nil {
			return nil, errors.New("no result yet")
		}
		pretty, _ := json.MarshalIndent(last.ReportByCategory(), "", "  ")
		s.logger.Info(string(pretty), zap.Int("jobs count", last.Len()))

		counts := last.CategoryCounts()
		for _, c := range record.Categories {
			fmt.Fprintf(os.Stdout, "%-10s %d\n", c, counts[c])
		}
		s.logger.Info("jobs by category", zap.Any("counts", counts))
		return nil, nil

	case PromptResultToFile:
		if last == nil {
			return nil, errors.New("no result yet")
		}
		filename, err := last.DumpToTmpFile()
		if err != nil {
			return nil, fmt.Errorf("dump results to file: %w", err)
		}
		s.logger.Info("dumping result to file", zap.String("filename", filename))
		return nil, nil

	case PromptExit:
		s.logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return nil, errExit

	default:
		return nil, fmt.Errorf("invalid action: %s", action)
	}
}

func (s *session) sortMenu() error {
	keyPrompt := promptui.Select{
		Label: "Sort by",
		Items: []string{sortByTitle, sortBySkills, sortByResumeSkills, PromptBack},
	}
	_, by, err := keyPrompt.Run()
	if err != nil || by == PromptBack {
		return err
	}

	algPrompt := promptui.Select{
		Label: "Algorithm",
		Items: sorting.Algorithms,
	}
	_, alg, err := algPrompt.Run()
	if err != nil {
		return err
	}

	s.config.Sort.Algorithm = sorting.Algorithm(alg)
	return s.sort(by, 10)
}

func (s *session) searchMenu() (*dataset.Jobs, error) {
	const (
		byTitle       = "Job title (linear)"
		byBinaryTitle = "Job title (binary)"
		byKeyword     = "Job title keyword"
		bySkill       = "Job skill"
		byResumeSkill = "Resume skill"
		byResumeID    = "Resume id"
	)

	kindPrompt := promptui.Select{
		Label: "Search by",
		Items: []string{byTitle, byBinaryTitle, byKeyword, bySkill, byResumeSkill, byResumeID, PromptBack},
	}
	_, kind, err := kindPrompt.Run()
	if err != nil || kind == PromptBack {
		return nil, err
	}

	if kind == byResumeID {
		id, err := askInt("Resume id", 1)
		if err != nil {
			return nil, err
		}
		return s.search(searchQuery{resumeID: id})
	}

	value, err := askString("Value")
	if err != nil {
		return nil, err
	}

	var q searchQuery
	switch kind {
	case byTitle:
		q.title = value
	case byBinaryTitle:
		q.binaryTitle = value
	case byKeyword:
		q.keyword = value
	case bySkill:
		q.skill = value
	case byResumeSkill:
		q.resumeSkill = value
	}

	return s.search(q)
}

func askString(label string) (string, error) {
	p := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("value is required")
			}
			return nil
		},
	}
	value, err := p.Run()
	return strings.TrimSpace(value), err
}

func askInt(label string, def int) (int, error) {
	p := promptui.Prompt{
		Label:   label,
		Default: strconv.Itoa(def),
		Validate: func(input string) error {
			_, err := strconv.Atoi(strings.TrimSpace(input))
			return err
		},
	}
	value, err := p.Run()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(value))
}
