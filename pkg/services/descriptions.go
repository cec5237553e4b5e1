package services

import (
	"unicode/utf8"

	"github.com/schemascore/schemascore-engine/pkg/models"
)

// descriptionsResult carries the description criterion score and, per column
// identifier, whether an adequate description was seen. The adequacy map is
// consumed by the aggregator to derive the compounding
// NonMeaningful_NoDescription category.
type descriptionsResult struct {
	Score    float64
	Adequate map[string]bool
}

// evaluateDescriptions scores the proportion of columns carrying an adequate
// description. Adequate means present, non-blank after trimming, and at
// least the configured minimum length: a bare single-word note does not
// count as documentation.
func evaluateDescriptions(schema []models.ColumnDescriptor, cfg ScoringConfig, weight float64) descriptionsResult {
	result := descriptionsResult{Adequate: make(map[string]bool, len(schema))}
	if len(schema) == 0 {
		return result
	}

	adequate := 0
	for _, col := range schema {
		if isAdequateDescription(col.DescriptionText(), cfg.MinDescriptionLength) {
			adequate++
			result.Adequate[col.Identifier()] = true
		}
	}

	result.Score = weight * float64(adequate) / float64(len(schema))
	return result
}

// isAdequateDescription reports whether a trimmed description is present and
// long enough to plausibly describe the column.
func isAdequateDescription(trimmed string, minLength int) bool {
	return trimmed != "" && utf8.RuneCountInString(trimmed) >= minLength
}
