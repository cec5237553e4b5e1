package services

import (
	"fmt"
	"math"

	"github.com/schemascore/schemascore-engine/pkg/apperrors"
	"github.com/schemascore/schemascore-engine/pkg/models"
)

const (
	// WeightSumTarget is the required total of the five criterion weights.
	WeightSumTarget = 100.0
	// WeightSumTolerance absorbs floating point noise in overrides.
	WeightSumTolerance = 0.01
)

// ResolveWeights merges an override mapping over the default weights and
// validates the result. Unspecified keys keep their defaults; unknown keys
// are ignored for forward compatibility. Validation failures are never
// silently corrected: the caller gets apperrors.ErrInvalidWeights.
func ResolveWeights(override map[string]float64) (models.WeightConfig, error) {
	weights := models.DefaultWeights()

	for key, value := range override {
		switch key {
		case models.WeightKeyFieldNames:
			weights.FieldNames = value
		case models.WeightKeyFieldDescriptions:
			weights.FieldDescriptions = value
		case models.WeightKeyFieldNameSimilarity:
			weights.FieldNameSimilarity = value
		case models.WeightKeyFieldTypes:
			weights.FieldTypes = value
		case models.WeightKeyKeysPresence:
			weights.KeysPresence = value
		}
	}

	resolved := []struct {
		key   string
		value float64
	}{
		{models.WeightKeyFieldNames, weights.FieldNames},
		{models.WeightKeyFieldDescriptions, weights.FieldDescriptions},
		{models.WeightKeyFieldNameSimilarity, weights.FieldNameSimilarity},
		{models.WeightKeyFieldTypes, weights.FieldTypes},
		{models.WeightKeyKeysPresence, weights.KeysPresence},
	}
	for _, w := range resolved {
		if w.value < 0 {
			return models.WeightConfig{}, fmt.Errorf("%w: %s must be non-negative, got %g",
				apperrors.ErrInvalidWeights, w.key, w.value)
		}
	}

	if sum := weights.Sum(); math.Abs(sum-WeightSumTarget) > WeightSumTolerance {
		return models.WeightConfig{}, fmt.Errorf("%w: weights must sum to %g, got %g",
			apperrors.ErrInvalidWeights, WeightSumTarget, sum)
	}

	return weights, nil
}
