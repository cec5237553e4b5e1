package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schemascore/schemascore-engine/pkg/models"
)

func TestNormalizeNameForComparison(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user_id", "userid"},
		{"User.ID", "userid"},
		{"created-at", "createdat"},
		{"  plain  ", "plain"},
	}
	for _, tt := range tests {
		if got := normalizeNameForComparison(tt.input); got != tt.want {
			t.Errorf("normalizeNameForComparison(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNameSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, nameSimilarity("userid", "userid"))
	assert.Equal(t, 1.0, nameSimilarity("", ""))
	assert.InDelta(t, 1.0-1.0/7.0, nameSimilarity("userid", "userids"), 0.0001)
	assert.Less(t, nameSimilarity("email", "phone"), 0.5)
}

func TestEvaluateNameSimilarity_SeparatorVariantsFlagged(t *testing.T) {
	// "user_id" and "userid" normalize to the same text: both flagged.
	schema := []models.ColumnDescriptor{
		{TableName: "users", ColumnName: "user_id"},
		{TableName: "users", ColumnName: "userid"},
		{TableName: "users", ColumnName: "email"},
	}
	groups := GroupByTable(schema)

	result := evaluateNameSimilarity(groups, 0.85, 20, len(schema))

	assert.Equal(t, []string{"user_id", "userid"}, result.Flagged)
	assert.InDelta(t, 20*(1-2.0/3.0), result.Score, 0.0001)
}

func TestEvaluateNameSimilarity_SymmetricFlagging(t *testing.T) {
	schema := []models.ColumnDescriptor{
		{TableName: "t", ColumnName: "order_total"},
		{TableName: "t", ColumnName: "order_totals"},
	}
	result := evaluateNameSimilarity(GroupByTable(schema), 0.85, 20, len(schema))

	// Flagging one column of a pair implies flagging the other.
	assert.Len(t, result.Flagged, 2)
	assert.Contains(t, result.Flagged, "order_total")
	assert.Contains(t, result.Flagged, "order_totals")
}

func TestEvaluateNameSimilarity_NeverCrossesTableBoundaries(t *testing.T) {
	// Same near-identical names, but in different tables: no penalty.
	schema := []models.ColumnDescriptor{
		{TableName: "users", ColumnName: "user_id"},
		{TableName: "orders", ColumnName: "userid"},
	}
	result := evaluateNameSimilarity(GroupByTable(schema), 0.85, 20, len(schema))

	assert.Empty(t, result.Flagged)
	assert.Equal(t, 20.0, result.Score)
}

func TestEvaluateNameSimilarity_IdenticalNamesSkipped(t *testing.T) {
	schema := []models.ColumnDescriptor{
		{TableName: "t", ColumnName: "sdf"},
		{TableName: "t", ColumnName: "sdf", PrimaryKey: true},
	}
	result := evaluateNameSimilarity(GroupByTable(schema), 0.85, 20, len(schema))

	assert.Empty(t, result.Flagged)
	assert.Equal(t, 20.0, result.Score)
}

func TestEvaluateNameSimilarity_DistinctDescriptionsDifferentiate(t *testing.T) {
	schema := []models.ColumnDescriptor{
		{TableName: "t", ColumnName: "amount_net", Description: strPtr("Order amount before tax")},
		{TableName: "t", ColumnName: "amount_set", Description: strPtr("Bitmask of amount adjustment flags")},
	}
	result := evaluateNameSimilarity(GroupByTable(schema), 0.85, 20, len(schema))

	// Near-identical names, but both are documented differently: readers
	// can tell them apart, so no penalty.
	assert.Empty(t, result.Flagged)
	assert.Equal(t, 20.0, result.Score)
}

func TestEvaluateNameSimilarity_SameDescriptionsStillFlagged(t *testing.T) {
	schema := []models.ColumnDescriptor{
		{TableName: "t", ColumnName: "amount_net", Description: strPtr("The amount")},
		{TableName: "t", ColumnName: "amount_set", Description: strPtr("The amount")},
	}
	result := evaluateNameSimilarity(GroupByTable(schema), 0.85, 20, len(schema))

	assert.Len(t, result.Flagged, 2)
}

func TestEvaluateNameSimilarity_FlaggedColumnCountedOnce(t *testing.T) {
	// "userid" collides with two peers but counts once in the ratio.
	schema := []models.ColumnDescriptor{
		{TableName: "t", ColumnName: "userid"},
		{TableName: "t", ColumnName: "user_id"},
		{TableName: "t", ColumnName: "user_ids"},
		{TableName: "t", ColumnName: "email"},
	}
	result := evaluateNameSimilarity(GroupByTable(schema), 0.85, 20, len(schema))

	assert.Len(t, result.Flagged, 3)
	assert.InDelta(t, 20*(1-3.0/4.0), result.Score, 0.0001)
}

func TestEvaluateNameSimilarity_EmptyInput(t *testing.T) {
	result := evaluateNameSimilarity(nil, 0.85, 20, 0)
	assert.Equal(t, 0.0, result.Score)
	assert.Empty(t, result.Flagged)
}
