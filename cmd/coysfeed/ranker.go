// cmd/coysfeed/ranker.go
package main

import "sort"

// Rank orders candidate stories by priority (higher first), breaking
// ties by newer publish time, then drops near-duplicate coverage of the
// same event. Input is never modified; the result is a fresh slice.
// Rank is a fixed point: running it on its own output changes nothing.
func Rank(stories []Story) []Story {
	ranked := make([]Story, len(stories))
	copy(ranked, stories)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Priority != ranked[j].Priority {
			return ranked[i].Priority > ranked[j].Priority
		}
		return ranked[i].PublishedAt.After(ranked[j].PublishedAt)
	})

	// Single pass over the sorted slice: a story survives only if no
	// higher-ranked survivor already covers the same event.
	kept := make([]Story, 0, len(ranked))
	for _, story := range ranked {
		duplicate := false
		for _, existing := range kept {
			if similarTitles(existing.Title, story.Title) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, story)
		}
	}

	return kept
}

// similarTitles reports whether two titles describe the same event,
// using positional character overlap of the normalized strings: equal
// positions up to the shorter length, similar when the ratio exceeds
// 0.8. This is alignment-sensitive (an inserted leading word defeats
// it), which is the intended compatibility behavior, not edit distance.
func similarTitles(a, b string) bool {
	normA := normalizeTitle(a)
	normB := normalizeTitle(b)

	minLen := len(normA)
	if len(normB) < minLen {
		minLen = len(normB)
	}
	if minLen == 0 {
		return false
	}

	matches := 0
	for i := 0; i < minLen; i++ {
		if normA[i] == normB[i] {
			matches++
		}
	}

	return float64(matches)/float64(minLen) > 0.8
}

// normalizeTitle lower-cases and strips everything outside [a-z0-9].
func normalizeTitle(title string) string {
	out := make([]byte, 0, len(title))
	for i := 0; i < len(title); i++ {
		c := title[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		}
	}
	return string(out)
}
