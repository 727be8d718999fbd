package faq

import "context"

// Store defines the persistence contract for the corpus snapshot.
//
// Load returns (nil, nil) when no corpus has been persisted yet; the engine
// then falls back to the built-in default corpus. A present but malformed
// source fails with code "corpus_load". Save must not corrupt the previously
// persisted copy when it fails (code "corpus_persist").
type Store interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}
