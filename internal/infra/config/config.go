package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/optfm/faq-engine/internal/domain/faq"
)

// Corpus backend identifiers.
const (
	BackendFile = "file"
	BackendBolt = "bolt"
)

// Config aggregates runtime configuration for the engine.
type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus"`
	Matcher MatcherConfig `yaml:"matcher"`
}

// CorpusConfig selects the persistence backend and its location.
type CorpusConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	Watch   bool   `yaml:"watch"`
}

// MatcherConfig carries the scoring knobs. The defaults are the contract
// values; override them only together with the corpora that depend on them.
type MatcherConfig struct {
	QuestionWeight        float64 `yaml:"questionWeight"`
	KeywordWeight         float64 `yaml:"keywordWeight"`
	FuzzyThreshold        float64 `yaml:"fuzzyThreshold"`
	SimilarThreshold      float64 `yaml:"similarThreshold"`
	KeywordRatioThreshold float64 `yaml:"keywordRatioThreshold"`
	SimilarLimit          int     `yaml:"similarLimit"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// FaqConfig converts the matcher section into the domain config.
func (c *Config) FaqConfig() faq.Config {
	return faq.Config{
		QuestionWeight:        c.Matcher.QuestionWeight,
		KeywordWeight:         c.Matcher.KeywordWeight,
		FuzzyThreshold:        c.Matcher.FuzzyThreshold,
		SimilarThreshold:      c.Matcher.SimilarThreshold,
		KeywordRatioThreshold: c.Matcher.KeywordRatioThreshold,
	}
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FAQ_CORPUS_BACKEND"); v != "" {
		cfg.Corpus.Backend = v
	}
	if v := os.Getenv("FAQ_CORPUS_PATH"); v != "" {
		cfg.Corpus.Path = v
	}
	if v := os.Getenv("FAQ_CORPUS_WATCH"); v != "" {
		cfg.Corpus.Watch = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("FAQ_QUESTION_WEIGHT"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Matcher.QuestionWeight = parsed
		}
	}
	if v := os.Getenv("FAQ_KEYWORD_WEIGHT"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Matcher.KeywordWeight = parsed
		}
	}
	if v := os.Getenv("FAQ_FUZZY_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Matcher.FuzzyThreshold = parsed
		}
	}
	if v := os.Getenv("FAQ_SIMILAR_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Matcher.SimilarThreshold = parsed
		}
	}
	if v := os.Getenv("FAQ_KEYWORD_RATIO_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Matcher.KeywordRatioThreshold = parsed
		}
	}
	if v := os.Getenv("FAQ_SIMILAR_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Matcher.SimilarLimit = parsed
		}
	}
}

func defaultConfig() *Config {
	matcher := faq.DefaultConfig()
	return &Config{
		Corpus: CorpusConfig{
			Backend: BackendFile,
			Path:    "data/faq.json",
			Watch:   false,
		},
		Matcher: MatcherConfig{
			QuestionWeight:        matcher.QuestionWeight,
			KeywordWeight:         matcher.KeywordWeight,
			FuzzyThreshold:        matcher.FuzzyThreshold,
			SimilarThreshold:      matcher.SimilarThreshold,
			KeywordRatioThreshold: matcher.KeywordRatioThreshold,
			SimilarLimit:          3,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	switch c.Corpus.Backend {
	case BackendFile, BackendBolt:
	default:
		return fmt.Errorf("corpus.backend must be %q or %q", BackendFile, BackendBolt)
	}
	if strings.TrimSpace(c.Corpus.Path) == "" {
		return errors.New("corpus.path cannot be empty")
	}
	if c.Matcher.QuestionWeight <= 0 {
		return errors.New("matcher.questionWeight must be positive")
	}
	if c.Matcher.KeywordWeight <= 0 {
		return errors.New("matcher.keywordWeight must be positive")
	}
	if c.Matcher.FuzzyThreshold <= 0 || c.Matcher.FuzzyThreshold >= 1 {
		return errors.New("matcher.fuzzyThreshold must be in (0, 1)")
	}
	if c.Matcher.SimilarThreshold <= 0 || c.Matcher.SimilarThreshold >= 1 {
		return errors.New("matcher.similarThreshold must be in (0, 1)")
	}
	if c.Matcher.KeywordRatioThreshold <= 0 || c.Matcher.KeywordRatioThreshold >= 1 {
		return errors.New("matcher.keywordRatioThreshold must be in (0, 1)")
	}
	if c.Matcher.SimilarLimit <= 0 {
		return errors.New("matcher.similarLimit must be positive")
	}
	return nil
}
