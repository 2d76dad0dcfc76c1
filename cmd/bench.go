package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/collection"
	"github.com/spigell/skillmatch/internal/dataset"
	"github.com/spigell/skillmatch/internal/logger"
	"github.com/spigell/skillmatch/internal/record"
	"github.com/spigell/skillmatch/internal/search"
	"github.com/spigell/skillmatch/internal/sorting"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time every sort over both containers and linear against binary title search",
	Run: func(cmd *cobra.Command, _ []string) {
		s := newSession()
		// Benchmarks copy from the array store regardless of the configured storage.
		s.config.Storage = dataset.StorageArray
		s.mustLoad(false)

		limit, _ := cmd.Flags().GetInt("limit")

		results := s.bench(limit)
		printBench(os.Stdout, results)
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().Int("limit", 2000, "number of jobs to benchmark on, 0 for all")
}

type benchResult struct {
	name    string
	storage string
	records int
	elapsed time.Duration
	stats   sorting.Stats
}

// bench sorts fresh copies of the first limit jobs with every algorithm and
// searches the title-sorted copy linearly and by bisection. The list is
// searched linearly too.
func (s *session) bench(limit int) []benchResult {
	jobs := s.arrays.Jobs.ToSlice()
	if limit > 0 {
		jobs = firstN(jobs, limit)
	}

	var results []benchResult
	add := func(r benchResult) {
		s.logger.Info("benchmark",
			zap.String("name", r.name),
			zap.String(logger.FieldStorage, r.storage),
			zap.Int("records", r.records),
			zap.Int64(logger.FieldElapsed, r.elapsed.Microseconds()),
			zap.Int("comparisons", r.stats.Comparisons),
		)
		results = append(results, r)
	}

	for _, alg := range sorting.Algorithms {
		arr := collection.NewArray(jobs...)
		start := time.Now()
		stats, err := sorting.Sort(arr, byJobSkillCount, alg)
		if err != nil {
			s.logger.Error("benchmark", zap.String("name", string(alg)), zap.Error(err))
			continue
		}
		add(benchResult{name: string(alg), storage: dataset.StorageArray, records: arr.Len(), elapsed: time.Since(start), stats: stats})
	}

	l := collection.NewList(jobs...)
	start := time.Now()
	stats := sorting.BubbleList(l, byJobSkillCount)
	add(benchResult{name: string(sorting.AlgorithmBubble), storage: dataset.StorageList, records: l.Len(), elapsed: time.Since(start), stats: stats})

	if len(jobs) == 0 {
		return results
	}

	byTitle := collection.NewArray(jobs...)
	sorting.Merge(byTitle, byJobTitle)
	target := byTitle.At(byTitle.Len() - 1).Title

	start = time.Now()
	search.JobByTitle(byTitle, target)
	add(benchResult{name: "linear search", storage: dataset.StorageArray, records: byTitle.Len(), elapsed: time.Since(start)})

	start = time.Now()
	search.JobNodeByTitle(l, target)
	add(benchResult{name: "linear search", storage: dataset.StorageList, records: l.Len(), elapsed: time.Since(start)})

	start = time.Now()
	search.BinaryByTitle(byTitle, target)
	add(benchResult{name: "binary search", storage: dataset.StorageArray, records: byTitle.Len(), elapsed: time.Since(start)})

	return results
}

var (
	byJobSkillCount sorting.Compare[record.Job] = record.JobsBySkillCount
	byJobTitle      sorting.Compare[record.Job] = record.JobsByTitle
)

func printBench(w io.Writer, results []benchResult) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTORAGE\tRECORDS\tMICROSECONDS\tPASSES\tCOMPARISONS\tSWAPS")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			r.name, r.storage, r.records, r.elapsed.Microseconds(), r.stats.Passes, r.stats.Comparisons, r.stats.Swaps)
	}
	tw.Flush()
}
