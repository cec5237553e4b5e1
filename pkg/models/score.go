package models

// PenalizedFieldsReport maps each penalty category to the column names that
// triggered it. Lists are deduplicated and keep first-seen order. A column
// may appear in more than one category.
type PenalizedFieldsReport struct {
	// NonMeaningful lists columns whose names carry too little information.
	NonMeaningful []string `json:"NonMeaningful"`
	// NonMeaningfulNoDescription lists columns already flagged NonMeaningful
	// that also lack an adequate description. This is a compounding signal
	// derived from the other two checks, not a separate deduction.
	NonMeaningfulNoDescription []string `json:"NonMeaningful_NoDescription"`
	// SimilarUndifferentiated lists columns whose names are nearly identical
	// to another column in the same table.
	SimilarUndifferentiated []string `json:"Similar_Undifferentiated"`
}

// EmptyPenalizedFieldsReport returns a report with non-nil empty lists so
// the JSON encoding always carries arrays rather than nulls.
func EmptyPenalizedFieldsReport() PenalizedFieldsReport {
	return PenalizedFieldsReport{
		NonMeaningful:              []string{},
		NonMeaningfulNoDescription: []string{},
		SimilarUndifferentiated:    []string{},
	}
}

// ScoreBreakdown is the complete, immutable result of one scoring run.
// JSON keys match the public response contract verbatim.
type ScoreBreakdown struct {
	FieldNamesScore             float64 `json:"Field Names Score"`
	FieldNamesScorePct          float64 `json:"Field Names Score (%)"`
	FieldDescriptionsScore      float64 `json:"Field Descriptions Score"`
	FieldDescriptionsScorePct   float64 `json:"Field Descriptions Score (%)"`
	FieldNameSimilarityScore    float64 `json:"Field Name Similarity Score"`
	FieldNameSimilarityScorePct float64 `json:"Field Name Similarity Score (%)"`
	FieldTypesScore             float64 `json:"Field Types Score"`
	FieldTypesScorePct          float64 `json:"Field Types Score (%)"`
	KeysPresenceScore           float64 `json:"Keys Presence Score"`
	KeysPresenceScorePct        float64 `json:"Keys Presence Score (%)"`

	TotalScore    float64 `json:"Total Score"`
	TotalScorePct float64 `json:"Total Score (%)"`

	PenalizedFields PenalizedFieldsReport `json:"Penalized Fields"`
}
