package services

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// similarityResult carries the name-similarity criterion score and the
// columns flagged as ambiguously close to a sibling in the same table.
type similarityResult struct {
	Score   float64
	Flagged []string
}

// evaluateNameSimilarity compares every unordered pair of column names
// within each table group and flags pairs whose normalized similarity meets
// the threshold. Comparisons never cross table boundaries, so the quadratic
// cost is bounded by the largest single table, not the whole schema.
//
// Two suppressions apply: pairs with identical raw names are skipped (a
// duplicate name is not an ambiguity between two different names), and a
// near-identical pair where both columns carry distinct non-empty
// descriptions is considered differentiated by its documentation.
func evaluateNameSimilarity(groups []TableGroup, threshold float64, weight float64, totalColumns int) similarityResult {
	result := similarityResult{Flagged: []string{}}
	if totalColumns == 0 {
		return result
	}

	flaggedColumns := 0
	for _, group := range groups {
		cols := group.Columns
		flagged := make([]bool, len(cols))

		for i := 0; i < len(cols); i++ {
			for j := i + 1; j < len(cols); j++ {
				if cols[i].ScoringName() == cols[j].ScoringName() {
					continue
				}
				sim := nameSimilarity(
					normalizeNameForComparison(cols[i].ScoringName()),
					normalizeNameForComparison(cols[j].ScoringName()),
				)
				if sim < threshold {
					continue
				}
				descI, descJ := cols[i].DescriptionText(), cols[j].DescriptionText()
				if descI != "" && descJ != "" && descI != descJ {
					continue
				}
				flagged[i] = true
				flagged[j] = true
			}
		}

		for i, isFlagged := range flagged {
			if isFlagged {
				flaggedColumns++
				result.Flagged = append(result.Flagged, cols[i].Identifier())
			}
		}
	}

	result.Score = weight * (1 - float64(flaggedColumns)/float64(totalColumns))
	return result
}

// normalizeNameForComparison lower-cases a name and strips separators so
// that "user_id", "User.ID" and "userid" all compare as the same text.
func normalizeNameForComparison(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '.', '-', ' ':
			return -1
		}
		return r
	}, lower)
}

// nameSimilarity returns a normalized Levenshtein similarity in [0, 1].
func nameSimilarity(a, b string) float64 {
	runesA, runesB := []rune(a), []rune(b)
	maxLen := len(runesA)
	if len(runesB) > maxLen {
		maxLen = len(runesB)
	}
	if maxLen == 0 {
		return 1
	}
	distance := levenshtein.DistanceForStrings(runesA, runesB, levenshtein.DefaultOptions)
	return 1 - float64(distance)/float64(maxLen)
}
