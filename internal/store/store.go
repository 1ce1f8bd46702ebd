package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spigell/hr-agent/internal/talent"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	candidatesFile = "candidates.json"
	jobsFile       = "jobs.json"
	shortlistsFile = "shortlists.json"
)

// FallbackError reports that a document could not be read or decoded and an
// empty default was substituted. Callers may log it and continue; the
// collection returned alongside it is always usable.
type FallbackError struct {
	Path string
	Err  error
}

func (e *FallbackError) Error() string {
	return fmt.Sprintf("falling back to empty default for %s: %s", e.Path, e.Err)
}

func (e *FallbackError) Unwrap() error {
	return e.Err
}

// Store reads and writes the JSON documents in a single data directory.
// Documents are loaded fresh on every call; nothing is cached.
type Store struct {
	dir    string
	logger *zap.Logger
}

func New(dir string, logger *zap.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger,
	}
}

// Candidates loads the candidate collection. On a missing or corrupt document
// it returns an empty collection together with a *FallbackError.
func (s *Store) Candidates() (*talent.Candidates, error) {
	var items []*talent.Candidate
	if err := s.load(s.path(candidatesFile), &items); err != nil {
		return &talent.Candidates{}, err
	}

	return &talent.Candidates{Items: items}, nil
}

// Jobs loads the job collection with the same fallback semantics as Candidates.
func (s *Store) Jobs() (*talent.Jobs, error) {
	var items []*talent.Job
	if err := s.load(s.path(jobsFile), &items); err != nil {
		return &talent.Jobs{}, err
	}

	return &talent.Jobs{Items: items}, nil
}

// Shortlists loads the shortlists document. The returned map is never nil.
func (s *Store) Shortlists() (talent.Shortlists, error) {
	var lists talent.Shortlists
	if err := s.load(s.path(shortlistsFile), &lists); err != nil {
		return make(talent.Shortlists), err
	}

	if lists == nil {
		lists = make(talent.Shortlists)
	}

	return lists, nil
}

// SaveShortlist overwrites the named shortlist with the given indices and
// rewrites the whole shortlists document. Indices are stored verbatim; they
// are validated only when the shortlist is resolved against the candidate
// collection. Write errors are fatal for the calling command.
func (s *Store) SaveShortlist(name string, indices []int) error {
	lists, err := s.Shortlists()
	if err != nil {
		s.logger.Debug("starting shortlists from scratch", zap.Error(err))
	}

	lists.Set(name, indices)

	path := s.path(shortlistsFile)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("saving shortlists: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(lists); err != nil {
		return fmt.Errorf("saving shortlists: %w", err)
	}

	s.logger.Info("shortlist saved",
		zap.String("name", name),
		zap.Ints("indices", indices),
		zap.String("path", path),
	)

	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// load reads a JSON document and decodes it into out. The decode goes through
// a loose intermediate value so documents with slightly off field types still
// load. Any failure is reported as a *FallbackError and out is left untouched.
func (s *Store) load(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("reading document", zap.String("path", path), zap.Error(err))
		}
		return &FallbackError{Path: path, Err: err}
	}

	var loose any
	if err := json.Unmarshal(raw, &loose); err != nil {
		return &FallbackError{Path: path, Err: err}
	}

	cfg := &mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return fmt.Errorf("building decoder: %w", err)
	}

	if err := decoder.Decode(loose); err != nil {
		return &FallbackError{Path: path, Err: err}
	}

	return nil
}
