package cmd

import (
	"fmt"
	"io"
	"log"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/collection"
	"github.com/spigell/skillmatch/internal/dataset"
	"github.com/spigell/skillmatch/internal/logger"
	"github.com/spigell/skillmatch/internal/matching"
	"github.com/spigell/skillmatch/internal/record"
	"github.com/spigell/skillmatch/internal/utils"
	"github.com/spigell/skillmatch/internal/vocabulary"
)

const previewLimit = 60

// session is the state shared by one command invocation.
type session struct {
	logger   *zap.Logger
	config   *Config
	keywords matching.Keywords

	arrays *dataset.ArrayStore
	lists  *dataset.ListStore
}

// newSession builds the logger and config, exiting on failure the same way
// every command does.
func newSession() *session {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	l = l.With(zap.String("run_id", uuid.NewString()))

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	keywords, err := matching.LoadKeywords(matching.Source{
		Inline: config.Match.Keywords,
		File:   config.Match.KeywordsFile,
	})
	if err != nil {
		l.Fatal("loading keywords", zap.Error(err))
	}

	l.Debug("starting", zap.String("version", version), zap.Any("config", config))

	return &session{
		logger:   logger.WithCommonFields(l, config.Storage, string(config.Sort.Algorithm)),
		config:   config,
		keywords: keywords,
	}
}

func (s *session) options() dataset.Options {
	return dataset.Options{ProgressEvery: s.config.Load.ProgressEvery, Logger: s.logger}
}

// load reads both corpora into the configured store. withLists also fills
// the list store when the configured storage is array. Stores from an
// earlier load are cleared first.
func (s *session) load(withLists bool) error {
	lines, err := dataset.ReadFiles(s.config.Data.Jobs, s.config.Data.Resumes)
	if err != nil {
		return err
	}

	s.arrays.Clear()
	s.lists.Clear()
	s.arrays, s.lists = nil, nil

	if s.config.Storage == dataset.StorageList || withLists {
		s.lists = dataset.LoadLists(lines, s.options())
	}
	if s.config.Storage == dataset.StorageArray || withLists {
		s.arrays = dataset.LoadArrays(lines, s.options())
	}

	if (s.arrays != nil && s.arrays.Jobs.IsEmpty()) || (s.lists != nil && s.lists.Jobs.IsEmpty()) {
		return fmt.Errorf("no jobs found in %q", s.config.Data.Jobs)
	}
	return nil
}

func (s *session) useList() bool {
	return s.config.Storage == dataset.StorageList
}

// jobs is the job container of the configured storage.
func (s *session) jobs() collection.Sequence[record.Job] {
	if s.useList() {
		return s.lists.Jobs
	}
	return s.arrays.Jobs
}

func (s *session) resumes() collection.Sequence[record.Resume] {
	if s.useList() {
		return s.lists.Resumes
	}
	return s.arrays.Resumes
}

func (s *session) vocab() *vocabulary.Vocabulary {
	if s.useList() {
		return s.lists.Vocabulary
	}
	return s.arrays.Vocabulary
}

func (s *session) mustLoad(withLists bool) {
	if err := s.load(withLists); err != nil {
		s.logger.Fatal("loading data", zap.Error(err))
	}
}

func printJobs(w io.Writer, jobs []record.Job) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tTITLE\tCATEGORY\tPRIORITY\tSKILLS\tSCORE")
	for i, j := range jobs {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%d\t%s\t%.5f\n",
			i+1, j.ID, j.Title, j.Category, j.Priority,
			utils.JoinForLog(j.Skills, previewLimit), j.MatchScore)
	}
	tw.Flush()
}

func printResumes(w io.Writer, resumes []record.Resume) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tSKILLS\tTEXT")
	for i, r := range resumes {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n",
			i+1, r.ID, utils.JoinForLog(r.Skills, previewLimit), utils.TruncateForLog(r.FullText, previewLimit))
	}
	tw.Flush()
}

// printVocabulary prints the vocabulary size and its first limit skills.
func printVocabulary(w io.Writer, v *vocabulary.Vocabulary, limit int) {
	skills := v.Skills()
	fmt.Fprintf(w, "Vocabulary: %d skills\n", v.Len())
	if len(skills) > limit {
		skills = skills[:limit]
	}
	fmt.Fprintf(w, "First skills: %s\n", strings.Join(skills, ", "))
}

func printDiagnostics(w io.Writer, d *matching.Diagnostics) {
	fmt.Fprintf(w, "Resume %d: %s\n", d.Resume.ID, strings.Join(d.Resume.Skills, ", "))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tKEYWORD\tK-RANK\tWEIGHTED\tW-RANK\tSHIFT")
	for _, e := range d.Entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%.5f\t%d\t%+d\n",
			e.JobID, e.Title, e.KeywordScore, e.KeywordRank, e.WeightedScore, e.WeightedRank, e.Shift())
	}
	tw.Flush()
}
