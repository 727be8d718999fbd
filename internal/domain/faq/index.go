package faq

import "strings"

// tokenIndex maps normalized tokens to the set of entry ids containing them.
// It is a derived cache owned by the engine: rebuilt in full after every
// mutation, never persisted, and only read under the engine's lock.
type tokenIndex struct {
	postings map[string]map[int64]struct{}
}

func newTokenIndex() *tokenIndex {
	return &tokenIndex{postings: make(map[string]map[int64]struct{})}
}

// rebuild recomputes the index from scratch. Each keyword is indexed
// lowercased as a single token; question text is split into word tokens.
func (ix *tokenIndex) rebuild(entries []Entry) {
	postings := make(map[string]map[int64]struct{})
	add := func(token string, id int64) {
		set, ok := postings[token]
		if !ok {
			set = make(map[int64]struct{})
			postings[token] = set
		}
		set[id] = struct{}{}
	}

	for _, entry := range entries {
		for _, keyword := range entry.Keywords {
			add(strings.ToLower(keyword), entry.ID)
		}
		for _, word := range tokenize(strings.ToLower(entry.Question)) {
			add(word, entry.ID)
		}
	}
	ix.postings = postings
}

// lookup returns the id set for a token, nil when absent.
func (ix *tokenIndex) lookup(token string) map[int64]struct{} {
	return ix.postings[token]
}

func (ix *tokenIndex) size() int {
	return len(ix.postings)
}
