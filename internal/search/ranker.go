package search

import (
	"sort"
	"strings"
)

// MatchTier is the qualitative match category assigned to a candidate
// before numeric scoring.
type MatchTier string

const (
	// TierExact means a searchable text equals the term.
	TierExact MatchTier = "exact"
	// TierPrefix means a searchable text starts with the term.
	TierPrefix MatchTier = "prefix"
	// TierContains means a searchable text contains the term.
	TierContains MatchTier = "contains"
	// TierFuzzy means a searchable text is within edit distance of the term.
	TierFuzzy MatchTier = "fuzzy"
)

// Tier scores are contractual: clients sort and bucket on these values.
const (
	ScoreExact    = 100
	ScorePrefix   = 80
	ScoreContains = 60
	ScoreFuzzy    = 40

	// FuzzyThreshold is the minimum similarity for a fuzzy-tier match.
	FuzzyThreshold = 0.7
)

// Ranked pairs a candidate with its best score and match tier.
type Ranked[C any] struct {
	Item  C         `json:"item"`
	Score int       `json:"score"`
	Tier  MatchTier `json:"match_tier"`
}

// Rank scores every candidate against the term across all of its searchable
// texts, keeps each candidate's best score, drops candidates that match no
// tier, and returns the survivors sorted by descending score. The sort is
// stable: ties keep the input order.
//
// textsOf supplies the searchable projections of a candidate (e.g. full
// name, email, phone); each text is normalized the same way as the term.
func Rank[C any](candidates []C, term Term, textsOf func(C) []string) []Ranked[C] {
	ranked := make([]Ranked[C], 0, len(candidates))

	for _, candidate := range candidates {
		best := Ranked[C]{Item: candidate}
		for _, text := range textsOf(candidate) {
			score, tier := scoreText(Normalize(text), term.String())
			if score > best.Score {
				best.Score = score
				best.Tier = tier
			}
		}
		if best.Score > 0 {
			ranked = append(ranked, best)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// scoreText assigns the strongest applicable tier for a single text.
func scoreText(text, term string) (int, MatchTier) {
	switch {
	case text == term:
		return ScoreExact, TierExact
	case strings.HasPrefix(text, term):
		return ScorePrefix, TierPrefix
	case strings.Contains(text, term):
		return ScoreContains, TierContains
	case Similarity(text, term) > FuzzyThreshold:
		return ScoreFuzzy, TierFuzzy
	}
	return 0, ""
}
