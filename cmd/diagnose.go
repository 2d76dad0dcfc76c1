package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/dataset"
	"github.com/spigell/skillmatch/internal/matching"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Compare keyword and weighted rankings of every job for one resume",
	Run: func(cmd *cobra.Command, _ []string) {
		s := newSession()
		// Diagnostics index into an array regardless of the configured storage.
		s.config.Storage = dataset.StorageArray
		s.mustLoad(false)

		index, _ := cmd.Flags().GetInt("resume")

		diag, err := matching.Diagnose(s.arrays.Jobs, s.arrays.Resumes, index, s.keywords, s.config.Sort.Algorithm)
		if err != nil {
			s.logger.Fatal("diagnostics", zap.Error(err), zap.Int("resume_index", index))
		}

		printDiagnostics(os.Stdout, diag)
	},
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)

	diagnoseCmd.Flags().IntP("resume", "r", 0, "zero-based resume index")
}
