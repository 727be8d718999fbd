package faq

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"

	apperrors "github.com/optfm/faq-engine/pkg/errors"
)

// Engine exposes the multi-tier FAQ matching capabilities.
type Engine interface {
	// Search resolves a free-text query through the three tiers in order:
	// exact substring, keyword index scoring, fuzzy similarity.
	Search(query string) (Match, bool)
	// Similar returns up to limit entries scored by the fuzzy formula,
	// best first.
	Similar(query string, limit int) []Entry
	// ByCategory returns entries whose keywords overlap the category term.
	ByCategory(category string) []Entry
	Statistics() Stats
	Get(id int64) (Entry, bool)
	All() []Entry

	Add(ctx context.Context, question, answer string, keywords []string) (Entry, error)
	Update(ctx context.Context, id int64, patch Patch) (Entry, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)

	// Reload replaces the corpus from the store, falling back to the
	// built-in default set when nothing has been persisted yet.
	Reload(ctx context.Context) error
	// Seed replaces the corpus in memory without persisting, used by
	// callers implementing their own load-failure policy.
	Seed(entries []Entry)
}

type engine struct {
	mu     sync.RWMutex
	cfg    Config
	store  Store
	logger *slog.Logger

	entries []Entry
	byID    map[int64]int
	index   *tokenIndex
}

// NewEngine wires up an empty engine. Call Reload or Seed to populate it.
// A nil store keeps the corpus memory-only.
func NewEngine(cfg Config, store Store, logger *slog.Logger) Engine {
	return &engine{
		cfg:    cfg.withDefaults(),
		store:  store,
		logger: logger.With("component", "faq.engine"),
		byID:   make(map[int64]int),
		index:  newTokenIndex(),
	}
}

func (e *engine) Search(query string) (Match, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	normalized := normalizeQuery(query)
	if normalized == "" || len(e.entries) == 0 {
		return Match{}, false
	}
	queryWords := tokenize(normalized)

	if match, ok := e.searchExact(normalized); ok {
		e.logger.Debug("faq exact match", "query", query, "id", match.Entry.ID)
		return match, true
	}
	if match, ok := e.searchKeywords(queryWords); ok {
		e.logger.Debug("faq keyword match", "query", query, "id", match.Entry.ID, "score", match.Score)
		return match, true
	}
	if match, ok := e.searchFuzzy(normalized, queryWords); ok {
		e.logger.Debug("faq fuzzy match", "query", query, "id", match.Entry.ID, "score", match.Score)
		return match, true
	}
	e.logger.Debug("faq no match", "query", query)
	return Match{}, false
}

// searchExact scans entries in insertion order and returns the first whose
// lowercased question contains the query. First match wins; the order
// dependence is part of the contract.
func (e *engine) searchExact(normalized string) (Match, bool) {
	for i := range e.entries {
		if strings.Contains(strings.ToLower(e.entries[i].Question), normalized) {
			return Match{Entry: cloneEntry(e.entries[i]), Score: 1.0, Tier: TierExact}, true
		}
	}
	return Match{}, false
}

// searchKeywords accumulates index hits per entry across all query words.
// The highest count wins, ties go to the lowest id, and a single hit is
// enough: precision is deliberately loose at this tier.
func (e *engine) searchKeywords(queryWords []string) (Match, bool) {
	if len(queryWords) == 0 {
		return Match{}, false
	}

	counts := make(map[int64]int)
	for _, word := range queryWords {
		for id := range e.index.lookup(word) {
			counts[id]++
		}
	}

	var (
		bestID    int64
		bestCount int
	)
	for id, count := range counts {
		if count > bestCount || (count == bestCount && id < bestID) {
			bestID = id
			bestCount = count
		}
	}
	if bestCount < 1 {
		return Match{}, false
	}

	idx, ok := e.byID[bestID]
	if !ok {
		return Match{}, false
	}
	score := math.Min(1.0, float64(bestCount)/float64(len(queryWords)))
	return Match{Entry: cloneEntry(e.entries[idx]), Score: score, Tier: TierKeyword}, true
}

// searchFuzzy scans every entry and keeps the best total score, accepting it
// only above the fuzzy threshold. The strictly-greater comparison keeps the
// first entry encountered on ties.
func (e *engine) searchFuzzy(normalized string, queryWords []string) (Match, bool) {
	bestScore := 0.0
	bestIdx := -1
	for i := range e.entries {
		total := e.totalScore(normalized, queryWords, e.entries[i])
		if total > bestScore && total > e.cfg.FuzzyThreshold {
			bestScore = total
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return Match{}, false
	}
	return Match{Entry: cloneEntry(e.entries[bestIdx]), Score: bestScore, Tier: TierFuzzy}, true
}

// totalScore is the weighted combination of question similarity and keyword
// coverage used by the fuzzy tier and by Similar.
func (e *engine) totalScore(normalized string, queryWords []string, entry Entry) float64 {
	questionScore := sequenceRatio(normalized, strings.ToLower(entry.Question))
	kwScore := keywordScore(queryWords, entry.Keywords, e.cfg.KeywordRatioThreshold)
	return e.cfg.QuestionWeight*questionScore + e.cfg.KeywordWeight*kwScore
}

func (e *engine) Similar(query string, limit int) []Entry {
	if limit <= 0 {
		return nil
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	normalized := normalizeQuery(query)
	queryWords := tokenize(normalized)

	type scored struct {
		idx   int
		score float64
	}
	candidates := make([]scored, 0, len(e.entries))
	for i := range e.entries {
		total := e.totalScore(normalized, queryWords, e.entries[i])
		if total > e.cfg.SimilarThreshold {
			candidates = append(candidates, scored{idx: i, score: total})
		}
	}
	// stable: equal scores keep insertion order
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]Entry, len(candidates))
	for i, c := range candidates {
		result[i] = cloneEntry(e.entries[c.idx])
	}
	return result
}

func (e *engine) ByCategory(category string) []Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	cat := normalizeQuery(category)
	if cat == "" {
		return nil
	}
	var result []Entry
	for i := range e.entries {
		for _, keyword := range e.entries[i].Keywords {
			kw := strings.ToLower(keyword)
			if strings.Contains(kw, cat) || strings.Contains(cat, kw) {
				result = append(result, cloneEntry(e.entries[i]))
				break
			}
		}
	}
	return result
}

func (e *engine) Statistics() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	totalKeywords := 0
	for i := range e.entries {
		totalKeywords += len(e.entries[i].Keywords)
	}
	avg := 0.0
	if len(e.entries) > 0 {
		avg = float64(totalKeywords) / float64(len(e.entries))
		avg = math.Round(avg*100) / 100
	}
	return Stats{
		TotalEntries:            len(e.entries),
		TotalKeywords:           totalKeywords,
		AverageKeywordsPerEntry: avg,
		IndexSize:               e.index.size(),
	}
}

func (e *engine) Get(id int64) (Entry, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	idx, ok := e.byID[id]
	if !ok {
		return Entry{}, false
	}
	return cloneEntry(e.entries[idx]), true
}

func (e *engine) All() []Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return cloneEntries(e.entries)
}

// Add appends a new entry with id max(live ids)+1. A freed lower id can be
// handed out again after deletes; ids are only stable while the entry lives.
func (e *engine) Add(ctx context.Context, question, answer string, keywords []string) (Entry, error) {
	if strings.TrimSpace(question) == "" {
		return Entry{}, apperrors.Wrap(apperrors.CodeInvalidInput, "question cannot be empty", nil)
	}
	if strings.TrimSpace(answer) == "" {
		return Entry{}, apperrors.Wrap(apperrors.CodeInvalidInput, "answer cannot be empty", nil)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var maxID int64
	for id := range e.byID {
		if id > maxID {
			maxID = id
		}
	}
	entry := Entry{
		ID:       maxID + 1,
		Question: question,
		Answer:   answer,
		Keywords: append([]string(nil), keywords...),
	}
	e.entries = append(e.entries, entry)
	e.byID[entry.ID] = len(e.entries) - 1
	e.index.rebuild(e.entries)

	err := e.persistLocked(ctx)
	e.logger.Info("faq entry added", "id", entry.ID)
	return cloneEntry(entry), err
}

// Update applies the non-nil fields of patch. The mutation is applied and
// the index rebuilt even when persistence fails; the error reports only the
// store.
func (e *engine) Update(ctx context.Context, id int64, patch Patch) (Entry, bool, error) {
	if patch.Question != nil && strings.TrimSpace(*patch.Question) == "" {
		return Entry{}, false, apperrors.Wrap(apperrors.CodeInvalidInput, "question cannot be empty", nil)
	}
	if patch.Answer != nil && strings.TrimSpace(*patch.Answer) == "" {
		return Entry{}, false, apperrors.Wrap(apperrors.CodeInvalidInput, "answer cannot be empty", nil)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx, ok := e.byID[id]
	if !ok {
		return Entry{}, false, nil
	}
	if patch.Question != nil {
		e.entries[idx].Question = *patch.Question
	}
	if patch.Answer != nil {
		e.entries[idx].Answer = *patch.Answer
	}
	if patch.Keywords != nil {
		e.entries[idx].Keywords = append([]string(nil), (*patch.Keywords)...)
	}
	e.index.rebuild(e.entries)

	err := e.persistLocked(ctx)
	e.logger.Info("faq entry updated", "id", id)
	return cloneEntry(e.entries[idx]), true, err
}

func (e *engine) Delete(ctx context.Context, id int64) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx, ok := e.byID[id]
	if !ok {
		return false, nil
	}
	e.entries = append(e.entries[:idx], e.entries[idx+1:]...)
	delete(e.byID, id)
	for i := idx; i < len(e.entries); i++ {
		e.byID[e.entries[i].ID] = i
	}
	e.index.rebuild(e.entries)

	err := e.persistLocked(ctx)
	e.logger.Info("faq entry deleted", "id", id)
	return true, err
}

func (e *engine) Reload(ctx context.Context) error {
	if e.store == nil {
		e.Seed(DefaultEntries())
		return nil
	}
	entries, err := e.store.Load(ctx)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = DefaultEntries()
		e.logger.Info("no persisted corpus, using default entries", "count", len(entries))
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.replaceLocked(entries)
	e.logger.Info("faq corpus loaded", "count", len(entries))
	return nil
}

func (e *engine) Seed(entries []Entry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.replaceLocked(cloneEntries(entries))
}

func (e *engine) replaceLocked(entries []Entry) {
	e.entries = entries
	e.byID = make(map[int64]int, len(entries))
	for i := range entries {
		e.byID[entries[i].ID] = i
	}
	e.index.rebuild(e.entries)
}

func (e *engine) persistLocked(ctx context.Context) error {
	if e.store == nil {
		return nil
	}
	if err := e.store.Save(ctx, e.entries); err != nil {
		e.logger.Warn("faq corpus save failed", "error", err)
		return err
	}
	return nil
}

var _ Engine = (*engine)(nil)
