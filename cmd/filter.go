package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/collection"
	"github.com/spigell/skillmatch/internal/filtering"
	"github.com/spigell/skillmatch/internal/matching"
	"github.com/spigell/skillmatch/internal/record"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Run the job filter pipeline and print what is left",
	Run: func(cmd *cobra.Command, _ []string) {
		s := newSession()
		s.mustLoad(false)

		resumeID, _ := cmd.Flags().GetInt("resume")
		scorer, _ := cmd.Flags().GetString("scorer")

		jobs, err := s.filter(context.Background(), resumeID, scorer)
		if err != nil {
			s.logger.Fatal("filtering failed", zap.Error(err))
		}

		fmt.Fprintf(os.Stdout, "=== %d jobs left ===\n", jobs.Len())
		printJobs(os.Stdout, jobs.ToSlice())
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().String("title-keyword", "", "keep jobs whose title contains the keyword")
	filterCmd.Flags().StringSlice("skills", nil, "keep jobs listing all of these skills")
	filterCmd.Flags().StringSlice("categories", nil, "keep jobs in these categories")
	filterCmd.Flags().Int("min-priority", 0, "keep jobs with at least this priority")
	filterCmd.Flags().Float64("min-score", 0, "keep jobs scoring at least this against --resume")
	filterCmd.Flags().IntP("resume", "r", 0, "resume id to score jobs against")
	filterCmd.Flags().String("scorer", "weighted", "score used by min-score: weighted, keyword or coverage")

	viper.BindPFlag("filter.title-keyword", filterCmd.Flags().Lookup("title-keyword"))
	viper.BindPFlag("filter.skills", filterCmd.Flags().Lookup("skills"))
	viper.BindPFlag("filter.categories", filterCmd.Flags().Lookup("categories"))
	viper.BindPFlag("filter.min-priority", filterCmd.Flags().Lookup("min-priority"))
	viper.BindPFlag("filter.min-score", filterCmd.Flags().Lookup("min-score"))
}

func (s *session) newScorer(name string) (matching.Scorer, error) {
	switch name {
	case "", "weighted":
		return matching.WeightedScorer{}, nil
	case "keyword":
		return matching.KeywordScorer{Keywords: s.keywords}, nil
	case "coverage":
		return matching.CoverageScorer{}, nil
	default:
		return nil, fmt.Errorf("unknown scorer %q", name)
	}
}

// filter runs the pipeline over the loaded jobs. Without a résumé the score
// step is disabled.
func (s *session) filter(ctx context.Context, resumeID int, scorerName string) (*collection.Array[record.Job], error) {
	cfg := &filtering.Config{
		TitleKeyword: s.config.Filter.TitleKeyword,
		Skills:       s.config.Filter.Skills,
		MinPriority:  s.config.Filter.MinPriority,
		MinScore:     s.config.Filter.MinScore,
	}
	for _, c := range s.config.Filter.Categories {
		cfg.Categories = append(cfg.Categories, record.Category(c))
	}

	scorer, err := s.newScorer(scorerName)
	if err != nil {
		return nil, err
	}

	steps := filtering.Steps()
	deps := filtering.Deps{Logger: s.logger, Scorer: scorer}

	if resumeID == 0 {
		filtering.DisableByName(steps, "min_score", "no resume selected")
	} else {
		r, ok := s.resumeByID(resumeID)
		if !ok {
			return nil, fmt.Errorf("resume %d not found", resumeID)
		}
		deps.Resume = &r
	}

	for _, st := range filtering.Describe(steps) {
		s.logger.Debug("filter", zap.String("name", st.Name), zap.Bool("enabled", st.Enabled), zap.String("reason", st.Reason))
	}

	if s.useList() {
		return filtering.Run(ctx, cfg, deps, steps, collection.NewArray(s.lists.Jobs.ToSlice()...))
	}
	return filtering.Run(ctx, cfg, deps, steps, s.arrays.Jobs)
}
