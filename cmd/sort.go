package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/logger"
	"github.com/spigell/skillmatch/internal/record"
	"github.com/spigell/skillmatch/internal/sorting"
)

const (
	sortByTitle        = "title"
	sortBySkills       = "skills"
	sortByResumeSkills = "resume-skills"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort jobs by title or skill count, or resumes by skill count, and print a sample",
	Run: func(cmd *cobra.Command, _ []string) {
		s := newSession()
		s.mustLoad(false)

		by, _ := cmd.Flags().GetString("by")
		sample, _ := cmd.Flags().GetInt("sample")

		if err := s.sort(by, sample); err != nil {
			s.logger.Fatal("sorting", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)

	sortCmd.Flags().String("by", sortByTitle, "sort key: title, skills or resume-skills")
	sortCmd.Flags().Int("sample", 10, "number of records to print after sorting")
}

// sort sorts the loaded store in place. Lists always use bubble sort.
func (s *session) sort(by string, sample int) error {
	start := time.Now()
	var stats sorting.Stats

	switch by {
	case sortByTitle, sortBySkills:
		cmp := record.JobsByTitle
		if by == sortBySkills {
			cmp = record.JobsBySkillCount
		}

		if s.useList() {
			stats = sorting.BubbleList(s.lists.Jobs, cmp)
			printJobs(os.Stdout, firstN(s.lists.Jobs.ToSlice(), sample))
			break
		}

		var err error
		if stats, err = sorting.Sort(s.arrays.Jobs, cmp, s.config.Sort.Algorithm); err != nil {
			return err
		}
		printJobs(os.Stdout, firstN(s.arrays.Jobs.ToSlice(), sample))

	case sortByResumeSkills:
		if s.useList() {
			stats = sorting.BubbleList(s.lists.Resumes, record.ResumesBySkillCount)
			printResumes(os.Stdout, firstN(s.lists.Resumes.ToSlice(), sample))
			break
		}

		var err error
		if stats, err = sorting.Sort(s.arrays.Resumes, record.ResumesBySkillCount, s.config.Sort.Algorithm); err != nil {
			return err
		}
		printResumes(os.Stdout, firstN(s.arrays.Resumes.ToSlice(), sample))

	default:
		return fmt.Errorf("unknown sort key %q", by)
	}

	s.logger.Info("sorted",
		zap.String("by", by),
		zap.Int("passes", stats.Passes),
		zap.Int("comparisons", stats.Comparisons),
		zap.Int("swaps", stats.Swaps),
		logger.Elapsed(start),
	)
	return nil
}
