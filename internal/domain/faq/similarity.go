package faq

import "strings"

// sequenceRatio reports the similarity of two strings as 2*M/T, where M is
// the total size of the longest matching blocks and T the combined length.
// It reproduces difflib.SequenceMatcher.ratio over runes, without the junk
// heuristic (questions are far below the autojunk cutoff).
func sequenceRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}

	b2j := make(map[rune][]int, len(rb))
	for j, r := range rb {
		b2j[r] = append(b2j[r], j)
	}

	matches := 0
	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(ra), 0, len(rb)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		besti, bestj, bestsize := longestMatch(ra, b2j, s.alo, s.ahi, s.blo, s.bhi)
		if bestsize == 0 {
			continue
		}
		matches += bestsize
		if s.alo < besti && s.blo < bestj {
			queue = append(queue, span{s.alo, besti, s.blo, bestj})
		}
		if besti+bestsize < s.ahi && bestj+bestsize < s.bhi {
			queue = append(queue, span{besti + bestsize, s.ahi, bestj + bestsize, s.bhi})
		}
	}

	return 2.0 * float64(matches) / float64(total)
}

// longestMatch finds the longest block of ra[alo:ahi] that also occurs in
// b within [blo:bhi), preferring the earliest occurrence on ties.
func longestMatch(ra []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[ra[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}

// keywordMatches decides whether a single keyword is satisfied by a single
// query word. The five conditions are deliberately spelled out so each stays
// testable on its own: equality, containment in either direction, prefix in
// either direction, and a fuzzy ratio above the threshold.
func keywordMatches(keyword, word string, ratioThreshold float64) bool {
	if keyword == word {
		return true
	}
	if strings.Contains(word, keyword) {
		return true
	}
	if strings.Contains(keyword, word) {
		return true
	}
	if strings.HasPrefix(word, keyword) || strings.HasPrefix(keyword, word) {
		return true
	}
	return sequenceRatio(keyword, word) > ratioThreshold
}

// keywordScore is the fraction of the entry's keywords matched by at least
// one query word. Empty keywords or an empty query score zero.
func keywordScore(queryWords, keywords []string, ratioThreshold float64) float64 {
	if len(keywords) == 0 || len(queryWords) == 0 {
		return 0.0
	}
	matched := 0
	for _, keyword := range keywords {
		kw := strings.ToLower(keyword)
		for _, word := range queryWords {
			if keywordMatches(kw, word, ratioThreshold) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(keywords))
}
