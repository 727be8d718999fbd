package faq

// Tier identifies the resolution strategy that produced a match.
type Tier string

const (
	// TierExact means the normalized query was a substring of the question.
	TierExact Tier = "exact"
	// TierKeyword means the match came from inverted index hit counting.
	TierKeyword Tier = "keyword"
	// TierFuzzy means the match came from string similarity scoring.
	TierFuzzy Tier = "fuzzy"
)

// Entry is one curated question/answer record.
type Entry struct {
	ID       int64    `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords"`
}

// Match is the result of a successful Search call.
type Match struct {
	Entry Entry   `json:"entry"`
	Score float64 `json:"score"`
	Tier  Tier    `json:"tier"`
}

// Patch carries a partial entry update. Nil fields are left untouched; a
// pointer to an empty keyword slice clears the keywords.
type Patch struct {
	Question *string
	Answer   *string
	Keywords *[]string
}

// Stats summarizes the current corpus and index.
type Stats struct {
	TotalEntries            int     `json:"totalEntries"`
	TotalKeywords           int     `json:"totalKeywords"`
	AverageKeywordsPerEntry float64 `json:"averageKeywordsPerEntry"`
	IndexSize               int     `json:"indexSize"`
}

func cloneEntry(e Entry) Entry {
	clone := e
	clone.Keywords = append([]string(nil), e.Keywords...)
	return clone
}

func cloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = cloneEntry(e)
	}
	return out
}
