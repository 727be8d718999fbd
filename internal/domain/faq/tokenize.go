package faq

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minTokenLen is the rune count a word must exceed to become an index token.
// Short function words carry no signal in a corpus this small.
const minTokenLen = 2

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// tokenize splits normalized text into word tokens, dropping words of
// minTokenLen runes or fewer. The same rule is applied to questions at index
// build time and to queries at search time.
func tokenize(s string) []string {
	words := wordPattern.FindAllString(s, -1)
	tokens := words[:0]
	for _, w := range words {
		if utf8.RuneCountInString(w) > minTokenLen {
			tokens = append(tokens, w)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
