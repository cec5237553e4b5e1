package services

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jinzhu/inflection"

	"github.com/schemascore/schemascore-engine/pkg/models"
)

// separatorPattern splits nested-field paths and snake_case names into
// tokens, e.g. "device.web_info.browser" -> "device web info browser".
var separatorPattern = regexp.MustCompile(`[._\-]+`)

// namingResult carries the naming criterion score and the columns whose
// names were flagged as non-meaningful.
type namingResult struct {
	Score   float64
	Flagged []string
}

// evaluateNaming classifies each column name as meaningful or not and
// scores the schema on the proportion of acceptable names. A column with a
// non-meaningful name is still counted as acceptable when it carries a
// description: the documentation compensates for the poor name in the
// numeric score, though the name stays in the flagged list.
func evaluateNaming(schema []models.ColumnDescriptor, cfg ScoringConfig, weight float64) namingResult {
	result := namingResult{Flagged: []string{}}
	if len(schema) == 0 {
		return result
	}

	generic := stringSet(cfg.GenericNameTokens)
	shortAllowed := stringSet(cfg.ShortNameAllowlist)

	acceptable := 0
	for _, col := range schema {
		if isMeaningfulName(col.ScoringName(), cfg.MinNameLength, generic, shortAllowed) {
			acceptable++
			continue
		}
		result.Flagged = append(result.Flagged, col.Identifier())
		if col.HasDescription() {
			acceptable++
		}
	}

	result.Score = weight * float64(acceptable) / float64(len(schema))
	return result
}

// isMeaningfulName applies the deterministic naming rules: a name fails when
// it is shorter than the minimum (and not an allow-listed standard short
// identifier), consists only of generic or placeholder tokens, or has no
// alphabetic content at all. Plural generic tokens ("values", "fields") are
// caught by singularizing each token before the denylist check.
func isMeaningfulName(name string, minLength int, generic, shortAllowed map[string]bool) bool {
	raw := strings.ToLower(strings.TrimSpace(name))
	if raw == "" {
		return false
	}
	if shortAllowed[raw] {
		return true
	}

	proc := strings.TrimSpace(separatorPattern.ReplaceAllString(raw, " "))
	if utf8.RuneCountInString(proc) < minLength {
		return false
	}

	for _, token := range strings.Fields(proc) {
		base := strings.TrimRightFunc(token, unicode.IsDigit)
		if base == "" || !containsLetter(base) {
			// Numeric or punctuation placeholder, carries no information.
			continue
		}
		if generic[base] || generic[inflection.Singular(base)] {
			continue
		}
		return true
	}
	return false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func stringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}
