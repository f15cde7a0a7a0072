package match

import (
	"slices"

	"github.com/agext/levenshtein"
)

// MinSimilarity is the lowest score Suggest accepts.
const MinSimilarity = 0.5

// Similarity scores two identifiers from 0 (nothing in common) to 1 (equal
// after NormalizeIdent).
func Similarity(a, b string) float64 {
	return levenshtein.Similarity(NormalizeIdent(a), NormalizeIdent(b), nil)
}

// Suggest returns the candidate most similar to name. Equal scores are
// broken by closer length, then by more shared words, then by a longer
// common prefix, then by sort order. ok is false when no candidate reaches
// MinSimilarity or name itself is a candidate.
func Suggest(name string, candidates []string) (best string, ok bool) {
	if slices.Contains(candidates, name) {
		return "", false
	}

	sorted := slices.Clone(candidates)
	slices.Sort(sorted)

	var bestRank rank

	for _, c := range sorted {
		if r := rankOf(name, c); !ok || r.beats(bestRank) {
			best, bestRank, ok = c, r, true
		}
	}

	if !ok || bestRank.score < MinSimilarity {
		return "", false
	}

	return best, true
}

// Hint formats Suggest's answer for appending to a message.
func Hint(name string, candidates []string) string {
	if s, ok := Suggest(name, candidates); ok {
		return ", did you mean " + s + "?"
	}

	return ""
}

type rank struct {
	score   float64
	lenDiff int
	shared  int
	prefix  int
}

func rankOf(name, candidate string) rank {
	a, b := NormalizeIdent(name), NormalizeIdent(candidate)

	return rank{
		score:   levenshtein.Similarity(a, b, nil),
		lenDiff: abs(len(a) - len(b)),
		shared:  sharedTokens(TokenizeIdent(name), TokenizeIdent(candidate)),
		prefix:  commonPrefix(a, b),
	}
}

func (r rank) beats(o rank) bool {
	switch {
	case r.score != o.score:
		return r.score > o.score
	case r.lenDiff != o.lenDiff:
		return r.lenDiff < o.lenDiff
	case r.shared != o.shared:
		return r.shared > o.shared
	default:
		return r.prefix > o.prefix
	}
}

func sharedTokens(a, b []string) int {
	n := 0

	for _, t := range a {
		if slices.Contains(b, t) {
			n++
		}
	}

	return n
}

func commonPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}

	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
