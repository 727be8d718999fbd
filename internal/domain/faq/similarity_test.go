package faq

import (
	"math"
	"testing"
)

func TestSequenceRatio(t *testing.T) {
	cases := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "both empty", a: "", b: "", want: 1.0},
		{name: "identical", a: "доставка", b: "доставка", want: 1.0},
		{name: "one empty", a: "abc", b: "", want: 0.0},
		{name: "shifted block", a: "abcd", b: "bcde", want: 0.75},
		{name: "two blocks", a: "abcd", b: "abd", want: 6.0 / 7.0},
		{name: "disjoint", a: "xyz", b: "абв", want: 0.0},
	}

	for _, tc := range cases {
		got := sequenceRatio(tc.a, tc.b)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%s: expected %v got %v", tc.name, tc.want, got)
		}
	}
}

func TestSequenceRatioSymmetricOrdering(t *testing.T) {
	// the matcher only depends on ratio ordering; a closer typo must beat a
	// distant one
	near := sequenceRatio("доствка", "доставка")
	far := sequenceRatio("оплата", "доставка")
	if near <= far {
		t.Fatalf("expected typo ratio %v to exceed unrelated ratio %v", near, far)
	}
	if near <= 0.8 {
		t.Fatalf("expected single-deletion typo to score above 0.8 got %v", near)
	}
}

func TestKeywordMatches(t *testing.T) {
	threshold := DefaultConfig().KeywordRatioThreshold
	cases := []struct {
		name    string
		keyword string
		word    string
		want    bool
	}{
		{name: "equality", keyword: "доставка", word: "доставка", want: true},
		{name: "keyword inside word", keyword: "опт", word: "оптом", want: true},
		{name: "word inside keyword", keyword: "сколько стоит", word: "стоит", want: true},
		{name: "keyword prefix of word", keyword: "гаранти", word: "гарантия", want: true},
		{name: "word prefix of keyword", keyword: "доставка", word: "дост", want: true},
		{name: "fuzzy above threshold", keyword: "доставка", word: "доставкой", want: true},
		{name: "unrelated", keyword: "цена", word: "доставка", want: false},
	}

	for _, tc := range cases {
		if got := keywordMatches(tc.keyword, tc.word, threshold); got != tc.want {
			t.Fatalf("%s: expected %v got %v", tc.name, tc.want, got)
		}
	}
}

func TestKeywordScore(t *testing.T) {
	threshold := DefaultConfig().KeywordRatioThreshold
	cases := []struct {
		name     string
		words    []string
		keywords []string
		want     float64
	}{
		{name: "no keywords", words: []string{"доставка"}, keywords: nil, want: 0.0},
		{name: "no query words", words: nil, keywords: []string{"доставка"}, want: 0.0},
		{name: "all matched", words: []string{"доставка", "отправка"}, keywords: []string{"доставка", "отправка"}, want: 1.0},
		{name: "half matched", words: []string{"доставка"}, keywords: []string{"доставка", "оплата"}, want: 0.5},
		{name: "keywords lowercased before matching", words: []string{"доставка"}, keywords: []string{"ДОСТАВКА"}, want: 1.0},
	}

	for _, tc := range cases {
		got := keywordScore(tc.words, tc.keywords, threshold)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%s: expected %v got %v", tc.name, tc.want, got)
		}
	}
}
