package faq

// Config holds the matcher's scoring knobs. The defaults are behavioral
// contracts shared with the persisted corpora; change them only together
// with the fixtures that assert on them.
type Config struct {
	// QuestionWeight and KeywordWeight combine the fuzzy tier's two
	// similarity numbers into the total score.
	QuestionWeight float64
	KeywordWeight  float64
	// FuzzyThreshold is the minimum total score the fuzzy tier accepts.
	FuzzyThreshold float64
	// SimilarThreshold is the minimum total score Similar keeps.
	SimilarThreshold float64
	// KeywordRatioThreshold is the sequence ratio above which a keyword
	// fuzzily matches a query word.
	KeywordRatioThreshold float64
}

// DefaultConfig returns the contract values: 0.6/0.4 weighting with the
// 0.3, 0.1 and 0.8 thresholds.
func DefaultConfig() Config {
	return Config{
		QuestionWeight:        0.6,
		KeywordWeight:         0.4,
		FuzzyThreshold:        0.3,
		SimilarThreshold:      0.1,
		KeywordRatioThreshold: 0.8,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.QuestionWeight <= 0 {
		c.QuestionWeight = def.QuestionWeight
	}
	if c.KeywordWeight <= 0 {
		c.KeywordWeight = def.KeywordWeight
	}
	if c.FuzzyThreshold <= 0 {
		c.FuzzyThreshold = def.FuzzyThreshold
	}
	if c.SimilarThreshold <= 0 {
		c.SimilarThreshold = def.SimilarThreshold
	}
	if c.KeywordRatioThreshold <= 0 {
		c.KeywordRatioThreshold = def.KeywordRatioThreshold
	}
	return c
}
