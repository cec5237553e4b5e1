package models

// Weight override keys accepted from callers. Unknown keys are ignored for
// forward compatibility.
const (
	WeightKeyFieldNames          = "field_names"
	WeightKeyFieldDescriptions   = "field_descriptions"
	WeightKeyFieldNameSimilarity = "field_name_similarity"
	WeightKeyFieldTypes          = "field_types"
	WeightKeyKeysPresence        = "keys_presence"
)

// Default weights per criterion. The five values sum to 100.
const (
	DefaultWeightFieldNames          = 35.0
	DefaultWeightFieldDescriptions   = 25.0
	DefaultWeightFieldNameSimilarity = 20.0
	DefaultWeightFieldTypes          = 10.0
	DefaultWeightKeysPresence        = 10.0
)

// WeightConfig holds the resolved weight of each scoring criterion.
// Invariant: all weights are non-negative and sum to 100 (within tolerance).
type WeightConfig struct {
	FieldNames          float64 `json:"field_names"`
	FieldDescriptions   float64 `json:"field_descriptions"`
	FieldNameSimilarity float64 `json:"field_name_similarity"`
	FieldTypes          float64 `json:"field_types"`
	KeysPresence        float64 `json:"keys_presence"`
}

// DefaultWeights returns the compiled-in weight configuration.
func DefaultWeights() WeightConfig {
	return WeightConfig{
		FieldNames:          DefaultWeightFieldNames,
		FieldDescriptions:   DefaultWeightFieldDescriptions,
		FieldNameSimilarity: DefaultWeightFieldNameSimilarity,
		FieldTypes:          DefaultWeightFieldTypes,
		KeysPresence:        DefaultWeightKeysPresence,
	}
}

// Sum returns the total of the five weights.
func (w WeightConfig) Sum() float64 {
	return w.FieldNames + w.FieldDescriptions + w.FieldNameSimilarity + w.FieldTypes + w.KeysPresence
}
