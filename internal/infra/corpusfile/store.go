// Package corpusfile persists the FAQ corpus as a JSON file. Writes go
// through a temp file and rename so a failed save never corrupts the
// previous copy.
package corpusfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/optfm/faq-engine/internal/domain/faq"
	apperrors "github.com/optfm/faq-engine/pkg/errors"
)

// Store reads and writes the corpus snapshot at a fixed path.
type Store struct {
	path string
}

// New constructs a store for the given corpus file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the corpus file location, for callers wiring a watcher.
func (s *Store) Path() string {
	return s.path
}

// Load implements faq.Store. A missing file is not an error: it returns
// (nil, nil) and the engine falls back to the default corpus.
func (s *Store) Load(_ context.Context) ([]faq.Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCorpusLoad, "read corpus file", err)
	}

	var entries []faq.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCorpusLoad, "parse corpus file", err)
	}
	if err := validate(entries); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCorpusLoad, "invalid corpus file", err)
	}
	return entries, nil
}

// Save implements faq.Store.
func (s *Store) Save(_ context.Context, entries []faq.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return apperrors.Wrap(apperrors.CodeCorpusPersist, "encode corpus", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.Wrap(apperrors.CodeCorpusPersist, "create corpus directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".corpus-*.json")
	if err != nil {
		return apperrors.Wrap(apperrors.CodeCorpusPersist, "create temp corpus file", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.Wrap(apperrors.CodeCorpusPersist, "write temp corpus file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrap(apperrors.CodeCorpusPersist, "close temp corpus file", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrap(apperrors.CodeCorpusPersist, "replace corpus file", err)
	}
	return nil
}

func validate(entries []faq.Entry) error {
	seen := make(map[int64]struct{}, len(entries))
	for _, entry := range entries {
		if entry.Question == "" {
			return errors.New("entry question cannot be empty")
		}
		if entry.Answer == "" {
			return errors.New("entry answer cannot be empty")
		}
		if _, dup := seen[entry.ID]; dup {
			return errors.New("duplicate entry id")
		}
		seen[entry.ID] = struct{}{}
	}
	return nil
}

var _ faq.Store = (*Store)(nil)
