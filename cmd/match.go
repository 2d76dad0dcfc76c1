package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/matching"
	"github.com/spigell/skillmatch/internal/record"
	"github.com/spigell/skillmatch/internal/search"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Print the best weighted job matches for a resume",
	Run: func(cmd *cobra.Command, _ []string) {
		s := newSession()
		s.mustLoad(false)

		resumeID, _ := cmd.Flags().GetInt("resume")
		byKeywords, _ := cmd.Flags().GetBool("keywords")

		jobs, err := s.match(resumeID, s.config.Match.TopN, byKeywords)
		if err != nil {
			s.logger.Fatal("matching", zap.Error(err))
		}

		fmt.Fprintf(os.Stdout, "=== Top %d matches for resume %d ===\n", s.config.Match.TopN, resumeID)
		printJobs(os.Stdout, jobs)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().IntP("resume", "r", 1, "resume id to match jobs for")
	matchCmd.Flags().IntP("top", "n", 0, "number of matches to print (default from match.top-n)")
	matchCmd.Flags().BoolP("keywords", "k", false, "rank by keyword overlap instead of the weighted score")

	viper.BindPFlag("match.top-n", matchCmd.Flags().Lookup("top"))
}

// match ranks the loaded jobs for the résumé with the given id.
func (s *session) match(resumeID, topN int, byKeywords bool) ([]record.Job, error) {
	resume, ok := s.resumeByID(resumeID)
	if !ok {
		return nil, fmt.Errorf("resume %d not found", resumeID)
	}

	if byKeywords {
		return s.rankByKeywords(resume, topN)
	}

	if s.useList() {
		return matching.TopMatchesList(s.lists.Jobs, resume, topN), nil
	}
	return matching.TopMatches(s.arrays.Jobs, resume, topN, s.config.Sort.Algorithm)
}

func (s *session) rankByKeywords(resume record.Resume, topN int) ([]record.Job, error) {
	if s.useList() {
		jobs := s.lists.Jobs.Clone()
		stats := matching.RankListByKeywords(jobs, resume, s.keywords)
		s.logger.Debug("ranked by keywords", zap.Int("passes", stats.Passes), zap.Int("swaps", stats.Swaps))
		return firstN(jobs.ToSlice(), topN), nil
	}

	jobs := s.arrays.Jobs.Clone()
	stats, err := matching.RankByKeywords(jobs, resume, s.keywords, s.config.Sort.Algorithm)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("ranked by keywords", zap.Int("comparisons", stats.Comparisons), zap.Int("swaps", stats.Swaps))
	return firstN(jobs.ToSlice(), topN), nil
}

func (s *session) resumeByID(id int) (record.Resume, bool) {
	return search.ResumeByID(s.resumes(), id)
}

func firstN[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	return items[:min(n, len(items))]
}
