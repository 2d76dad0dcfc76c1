package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/collection"
	"github.com/spigell/skillmatch/internal/dataset"
	"github.com/spigell/skillmatch/internal/record"
	"github.com/spigell/skillmatch/internal/search"
	"github.com/spigell/skillmatch/internal/sorting"
)

var errNoQuery = errors.New("one of --title, --binary-title, --keyword, --skill, --resume-skill or --resume-id is required")

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search jobs by title, title keyword or skill, and resumes by skill or id",
	Run: func(cmd *cobra.Command, _ []string) {
		s := newSession()

		q := searchQuery{}
		q.title, _ = cmd.Flags().GetString("title")
		q.binaryTitle, _ = cmd.Flags().GetString("binary-title")
		q.keyword, _ = cmd.Flags().GetString("keyword")
		q.skill, _ = cmd.Flags().GetString("skill")
		q.resumeSkill, _ = cmd.Flags().GetString("resume-skill")
		q.resumeID, _ = cmd.Flags().GetInt("resume-id")
		if q.empty() {
			s.logger.Fatal("search", zap.Error(errNoQuery))
		}

		s.mustLoad(false)

		if _, err := s.search(q); err != nil {
			s.logger.Fatal("search", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().String("title", "", "jobs with exactly this title (linear search)")
	searchCmd.Flags().String("binary-title", "", "a job with exactly this title (sorts by title, then binary search)")
	searchCmd.Flags().String("keyword", "", "jobs whose title contains the keyword, ignoring case")
	searchCmd.Flags().String("skill", "", "jobs listing the skill")
	searchCmd.Flags().String("resume-skill", "", "resumes listing the skill")
	searchCmd.Flags().Int("resume-id", 0, "the resume with this id")
}

type searchQuery struct {
	title       string
	binaryTitle string
	keyword     string
	skill       string
	resumeSkill string
	resumeID    int
}

func (q searchQuery) empty() bool {
	return q.title == "" && q.binaryTitle == "" && q.keyword == "" && q.skill == "" && q.resumeSkill == "" && q.resumeID == 0
}

// search runs every non-empty part of q and prints the results. Titles are
// stored lowercased, so title queries are lowercased too. The jobs found by
// the last job query are returned.
func (s *session) search(q searchQuery) (*dataset.Jobs, error) {
	var found *collection.Array[record.Job]

	if q.title != "" {
		found = search.JobsByTitle(s.jobs(), strings.ToLower(q.title))
		fmt.Fprintf(os.Stdout, "=== Jobs titled %q: %d ===\n", q.title, found.Len())
		printJobs(os.Stdout, found.ToSlice())
	}

	if q.binaryTitle != "" {
		job, ok, err := s.binaryByTitle(strings.ToLower(q.binaryTitle))
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(os.Stdout, "=== Binary search for %q ===\n", q.binaryTitle)
		if ok {
			printJobs(os.Stdout, []record.Job{job})
		} else {
			fmt.Fprintln(os.Stdout, "not found")
		}
	}

	if q.keyword != "" {
		found = search.FilterByTitleKeyword(s.jobs(), q.keyword)
		fmt.Fprintf(os.Stdout, "=== Jobs with %q in the title: %d ===\n", q.keyword, found.Len())
		printJobs(os.Stdout, found.ToSlice())
	}

	if q.skill != "" {
		found = search.JobsBySkill(s.jobs(), strings.ToLower(q.skill))
		fmt.Fprintf(os.Stdout, "=== Jobs requiring %q: %d ===\n", q.skill, found.Len())
		printJobs(os.Stdout, found.ToSlice())
	}

	if q.resumeSkill != "" {
		resumes := search.ResumesBySkill(s.resumes(), strings.ToLower(q.resumeSkill))
		fmt.Fprintf(os.Stdout, "=== Resumes with %q: %d ===\n", q.resumeSkill, resumes.Len())
		printResumes(os.Stdout, resumes.ToSlice())
	}

	if q.resumeID != 0 {
		r, ok := s.resumeByID(q.resumeID)
		if !ok {
			return nil, fmt.Errorf("resume %d not found", q.resumeID)
		}
		printResumes(os.Stdout, []record.Resume{r})
	}

	if found == nil {
		return nil, nil
	}
	return dataset.JobsOf(found), nil
}

// binaryByTitle sorts a copy of the jobs by title and binary searches it.
func (s *session) binaryByTitle(title string) (record.Job, bool, error) {
	var jobs *collection.Array[record.Job]
	if s.useList() {
		jobs = collection.NewArray(s.lists.Jobs.ToSlice()...)
	} else {
		jobs = s.arrays.Jobs.Clone()
	}

	if _, err := sorting.Sort(jobs, record.JobsByTitle, s.config.Sort.Algorithm); err != nil {
		return record.Job{}, false, err
	}

	i, ok := search.BinaryByTitle(jobs, title)
	if !ok {
		return record.Job{}, false, nil
	}
	return jobs.At(i), true, nil
}
