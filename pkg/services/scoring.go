package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/schemascore/schemascore-engine/pkg/apperrors"
	"github.com/schemascore/schemascore-engine/pkg/logging"
	"github.com/schemascore/schemascore-engine/pkg/models"
)

// ScoringConfig holds the tunable policy knobs of the evaluators. Evaluators
// receive it explicitly rather than reading ambient globals, so thresholds
// and vocabularies can be tuned and tested independently.
type ScoringConfig struct {
	// SimilarityThreshold is the minimum normalized similarity (0..1) at
	// which two column names in the same table are considered ambiguous.
	SimilarityThreshold float64
	// MinNameLength is the minimum rune count for a name to be considered,
	// unless it is on the short-name allowlist.
	MinNameLength int
	// MinDescriptionLength is the minimum rune count for a description to
	// count as adequate documentation.
	MinDescriptionLength int
	// GenericNameTokens is the denylist of low-information name tokens.
	GenericNameTokens []string
	// ShortNameAllowlist holds short-but-standard identifiers exempt from
	// the minimum length rule.
	ShortNameAllowlist []string
	// TypeVocabulary is the allow-list of recognized data type names.
	TypeVocabulary []string
}

// DefaultScoringConfig returns the compiled-in evaluator policy.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		SimilarityThreshold:  0.85,
		MinNameLength:        4,
		MinDescriptionLength: 10,
		GenericNameTokens: []string{
			"col", "column", "value", "data", "field", "sdf", "tmp", "temp",
			"test", "foo", "bar", "baz", "misc", "info", "stuff", "thing",
			"dummy", "placeholder", "unknown", "var", "attr", "obj", "item",
			"x", "y", "z",
		},
		ShortNameAllowlist: []string{"id", "pk", "fk", "uid", "url", "uri", "ip"},
		TypeVocabulary: []string{
			"STRING", "BYTES", "INT64", "INT", "INTEGER", "SMALLINT", "BIGINT",
			"FLOAT64", "FLOAT", "NUMERIC", "BIGNUMERIC", "DECIMAL",
			"BOOL", "BOOLEAN", "TIMESTAMP", "DATE", "TIME", "DATETIME",
			"GEOGRAPHY", "JSON", "INTERVAL", "STRUCT", "RECORD", "ARRAY", "RANGE",
		},
	}
}

// ScoreOptions are the per-request knobs accepted alongside the schema.
type ScoreOptions struct {
	// WeightsOverride replaces individual default weights. The merged
	// configuration must still sum to 100.
	WeightsOverride map[string]float64
	// SimilarityThreshold overrides the configured threshold for this
	// request only, when non-nil.
	SimilarityThreshold *float64
}

// ScoringService evaluates schema documentation quality. It is a pure
// function of its inputs: no state is shared between invocations, so
// concurrent use from independent requests is safe without locking.
type ScoringService struct {
	cfg    ScoringConfig
	logger *zap.Logger
}

// NewScoringService creates a scoring service with the given policy.
func NewScoringService(cfg ScoringConfig, logger *zap.Logger) *ScoringService {
	return &ScoringService{cfg: cfg, logger: logger}
}

// Score runs the five criterion evaluators over the schema and aggregates
// their results into a complete breakdown. An empty schema yields an
// all-zero breakdown rather than an error; invalid weights or structurally
// incomplete descriptors reject the whole request.
func (s *ScoringService) Score(schema []models.ColumnDescriptor, opts ScoreOptions) (*models.ScoreBreakdown, error) {
	weights, err := ResolveWeights(opts.WeightsOverride)
	if err != nil {
		return nil, err
	}

	if err := validateSchema(schema); err != nil {
		return nil, err
	}

	breakdown := &models.ScoreBreakdown{
		PenalizedFields: models.EmptyPenalizedFieldsReport(),
	}
	if len(schema) == 0 {
		return breakdown, nil
	}

	threshold := s.cfg.SimilarityThreshold
	if opts.SimilarityThreshold != nil {
		threshold = *opts.SimilarityThreshold
	}

	groups := GroupByTable(schema)

	naming := evaluateNaming(schema, s.cfg, weights.FieldNames)
	descriptions := evaluateDescriptions(schema, s.cfg, weights.FieldDescriptions)
	similarity := evaluateNameSimilarity(groups, threshold, weights.FieldNameSimilarity, len(schema))
	types := evaluateTypes(schema, s.cfg, weights.FieldTypes)
	keys := evaluateKeysPresence(groups, weights.KeysPresence)

	for _, id := range naming.Flagged {
		s.logger.Debug("Column name flagged as non-meaningful",
			zap.String("column", logging.SanitizeForLog(id)))
	}

	breakdown.FieldNamesScore = naming.Score
	breakdown.FieldDescriptionsScore = descriptions.Score
	breakdown.FieldNameSimilarityScore = similarity.Score
	breakdown.FieldTypesScore = types.Score
	breakdown.KeysPresenceScore = keys.Score

	breakdown.TotalScore = naming.Score + descriptions.Score + similarity.Score + types.Score + keys.Score

	breakdown.FieldNamesScorePct = safePct(naming.Score, weights.FieldNames)
	breakdown.FieldDescriptionsScorePct = safePct(descriptions.Score, weights.FieldDescriptions)
	breakdown.FieldNameSimilarityScorePct = safePct(similarity.Score, weights.FieldNameSimilarity)
	breakdown.FieldTypesScorePct = safePct(types.Score, weights.FieldTypes)
	breakdown.KeysPresenceScorePct = safePct(keys.Score, weights.KeysPresence)
	breakdown.TotalScorePct = safePct(breakdown.TotalScore, weights.Sum())

	breakdown.PenalizedFields = buildPenalizedFieldsReport(naming, descriptions, similarity)

	s.logger.Info("Schema scored",
		zap.Int("columns", len(schema)),
		zap.Int("tables", len(groups)),
		zap.Float64("total_score", breakdown.TotalScore),
		zap.Int("non_meaningful", len(breakdown.PenalizedFields.NonMeaningful)),
		zap.Int("similar_undifferentiated", len(breakdown.PenalizedFields.SimilarUndifferentiated)))

	return breakdown, nil
}

// validateSchema checks the fields needed to group and score a descriptor.
// Optional fields (description, collation, rounding mode) are legitimate
// absences and never validated.
func validateSchema(schema []models.ColumnDescriptor) error {
	for i, col := range schema {
		if col.ColumnName == "" {
			return fmt.Errorf("%w: entry %d is missing column_name", apperrors.ErrInvalidSchema, i)
		}
		if col.TableName == "" {
			return fmt.Errorf("%w: entry %d (%s) is missing table_name", apperrors.ErrInvalidSchema, i, col.ColumnName)
		}
	}
	return nil
}

// buildPenalizedFieldsReport assembles the final report. The compounding
// NonMeaningful_NoDescription category is a post-hoc intersection of the
// naming and description results, never a second deduction. Identifiers are
// deduplicated preserving first-seen order.
func buildPenalizedFieldsReport(naming namingResult, descriptions descriptionsResult, similarity similarityResult) models.PenalizedFieldsReport {
	report := models.EmptyPenalizedFieldsReport()
	report.NonMeaningful = dedupe(naming.Flagged)
	report.SimilarUndifferentiated = dedupe(similarity.Flagged)

	for _, id := range report.NonMeaningful {
		if !descriptions.Adequate[id] {
			report.NonMeaningfulNoDescription = append(report.NonMeaningfulNoDescription, id)
		}
	}
	return report
}

// safePct returns value/total as a percentage, with 0/0 defined as 0.
func safePct(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total * 100
}

// dedupe removes repeated identifiers while preserving first-seen order.
func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
