package services

import (
	"strings"

	"github.com/schemascore/schemascore-engine/pkg/models"
)

// typesResult carries the type-presence criterion score.
type typesResult struct {
	Score float64
}

// evaluateTypes scores the proportion of columns whose declared type is
// present and part of the recognized vocabulary. Presence-and-recognition
// only: there is no extra reward for more specific types.
func evaluateTypes(schema []models.ColumnDescriptor, cfg ScoringConfig, weight float64) typesResult {
	if len(schema) == 0 {
		return typesResult{}
	}

	vocabulary := stringSet(cfg.TypeVocabulary)
	acceptable := 0
	for _, col := range schema {
		if isAcceptableType(col.DataType, vocabulary) {
			acceptable++
		}
	}

	return typesResult{Score: weight * float64(acceptable) / float64(len(schema))}
}

// isAcceptableType matches a declared type against the vocabulary,
// case-insensitively and ignoring parameterization: "NUMERIC(10,2)" and
// "ARRAY<STRING>" are recognized by their base type.
func isAcceptableType(dataType string, vocabulary map[string]bool) bool {
	t := strings.TrimSpace(dataType)
	if t == "" {
		return false
	}
	if i := strings.IndexAny(t, "(<"); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	return vocabulary[strings.ToLower(t)]
}
