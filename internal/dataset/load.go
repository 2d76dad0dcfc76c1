// Package dataset loads the job and résumé corpora into array- or list-backed
// stores and exports results.
package dataset

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/collection"
	"github.com/spigell/skillmatch/internal/corpus"
	"github.com/spigell/skillmatch/internal/logger"
	"github.com/spigell/skillmatch/internal/record"
	"github.com/spigell/skillmatch/internal/vocabulary"
)

const (
	StorageArray = "array"
	StorageList  = "list"
)

// DefaultProgressEvery matches the interval the loaders report at when none is set.
const DefaultProgressEvery = 1000

// Options tune a load.
type Options struct {
	// ProgressEvery logs a progress line after that many records. Zero
	// uses DefaultProgressEvery, a negative value disables progress lines.
	ProgressEvery int
	Logger        *zap.Logger
}

func (o Options) progressEvery() int {
	if o.ProgressEvery == 0 {
		return DefaultProgressEvery
	}
	return o.ProgressEvery
}

// Lines holds the raw corpus lines, header already removed.
type Lines struct {
	Jobs    []string
	Resumes []string
}

// ReadFiles reads both corpora.
func ReadFiles(jobsPath, resumesPath string) (Lines, error) {
	jobs, err := corpus.ReadLines(jobsPath)
	if err != nil {
		return Lines{}, fmt.Errorf("reading jobs: %w", err)
	}
	resumes, err := corpus.ReadLines(resumesPath)
	if err != nil {
		return Lines{}, fmt.Errorf("reading resumes: %w", err)
	}
	return Lines{Jobs: jobs, Resumes: resumes}, nil
}

// JobStore is a job container LoadInto can fill and then read back.
// Array and List both satisfy it.
type JobStore interface {
	collection.Pusher[record.Job]
	collection.Sequence[record.Job]
}

// LoadInto parses every job line into jobs and every résumé line into
// resumes, with 1-based sequential ids. The skill vocabulary is built from
// the loaded jobs before any résumé is parsed, and each résumé keeps only
// vocabulary skills. The vocabulary is returned.
func LoadInto(jobs JobStore, resumes collection.Pusher[record.Resume], lines Lines, opts Options) *vocabulary.Vocabulary {
	log := logger.WithFields(opts.Logger)
	every := opts.progressEvery()
	start := time.Now()

	for i, line := range lines.Jobs {
		jobs.Push(record.NewJob(line, i+1))

		if every > 0 && (i+1)%every == 0 {
			log.Debug("loading jobs", zap.Int("processed", i+1), zap.Int("total", len(lines.Jobs)))
		}
	}

	vocab := vocabulary.Build(jobs)
	log.Info("jobs loaded",
		zap.Int("count", jobs.Len()),
		zap.Int("vocabulary", vocab.Len()),
	)

	for i, line := range lines.Resumes {
		resumes.Push(record.NewResume(line, i+1, vocab))

		if every > 0 && (i+1)%every == 0 {
			log.Debug("loading resumes", zap.Int("processed", i+1), zap.Int("total", len(lines.Resumes)))
		}
	}
	log.Info("resumes loaded", zap.Int("count", len(lines.Resumes)), logger.Elapsed(start))

	return vocab
}

// ArrayStore keeps jobs and résumés in arrays.
type ArrayStore struct {
	Jobs       *collection.Array[record.Job]
	Resumes    *collection.Array[record.Resume]
	Vocabulary *vocabulary.Vocabulary
}

// ListStore keeps jobs and résumés in linked lists.
type ListStore struct {
	Jobs       *collection.List[record.Job]
	Resumes    *collection.List[record.Resume]
	Vocabulary *vocabulary.Vocabulary
}

// LoadArrays builds an ArrayStore from lines.
func LoadArrays(lines Lines, opts Options) *ArrayStore {
	s := &ArrayStore{
		Jobs:    &collection.Array[record.Job]{},
		Resumes: &collection.Array[record.Resume]{},
	}
	opts.Logger = logger.WithCommonFields(opts.Logger, StorageArray, "")
	s.Vocabulary = LoadInto(s.Jobs, s.Resumes, lines, opts)
	return s
}

// LoadLists builds a ListStore from lines.
func LoadLists(lines Lines, opts Options) *ListStore {
	s := &ListStore{
		Jobs:    &collection.List[record.Job]{},
		Resumes: &collection.List[record.Resume]{},
	}
	opts.Logger = logger.WithCommonFields(opts.Logger, StorageList, "")
	s.Vocabulary = LoadInto(s.Jobs, s.Resumes, lines, opts)
	return s
}

// Clear releases every record held by the store. A nil store is a no-op.
func (s *ArrayStore) Clear() {
	if s == nil {
		return
	}
	s.Jobs.Clear()
	s.Resumes.Clear()
	s.Vocabulary = nil
}

// Clear releases every record held by the store. A nil store is a no-op.
func (s *ListStore) Clear() {
	if s == nil {
		return
	}
	s.Jobs.Clear()
	s.Resumes.Clear()
	s.Vocabulary = nil
}
