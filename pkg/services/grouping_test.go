package services

import (
	"testing"

	"github.com/schemascore/schemascore-engine/pkg/models"
)

func TestGroupByTable_Empty(t *testing.T) {
	groups := GroupByTable(nil)
	if len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}

func TestGroupByTable_PreservesOrder(t *testing.T) {
	schema := []models.ColumnDescriptor{
		{TableCatalog: "c", TableSchema: "public", TableName: "users", ColumnName: "id"},
		{TableCatalog: "c", TableSchema: "public", TableName: "orders", ColumnName: "order_id"},
		{TableCatalog: "c", TableSchema: "public", TableName: "users", ColumnName: "email"},
		{TableCatalog: "c", TableSchema: "public", TableName: "orders", ColumnName: "user_id"},
	}

	groups := GroupByTable(schema)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	// Groups in first-seen order
	if groups[0].Key.Table != "users" || groups[1].Key.Table != "orders" {
		t.Errorf("unexpected group order: %s, %s", groups[0].Key.Table, groups[1].Key.Table)
	}

	// Columns keep their original relative order within each group
	if groups[0].Columns[0].ColumnName != "id" || groups[0].Columns[1].ColumnName != "email" {
		t.Errorf("users column order broken: %+v", groups[0].Columns)
	}
	if groups[1].Columns[0].ColumnName != "order_id" || groups[1].Columns[1].ColumnName != "user_id" {
		t.Errorf("orders column order broken: %+v", groups[1].Columns)
	}
}

func TestGroupByTable_DistinguishesCatalogAndSchema(t *testing.T) {
	schema := []models.ColumnDescriptor{
		{TableCatalog: "a", TableSchema: "public", TableName: "users", ColumnName: "id"},
		{TableCatalog: "b", TableSchema: "public", TableName: "users", ColumnName: "id"},
		{TableCatalog: "a", TableSchema: "audit", TableName: "users", ColumnName: "id"},
	}

	groups := GroupByTable(schema)
	if len(groups) != 3 {
		t.Errorf("expected 3 groups for same table name across catalogs/schemas, got %d", len(groups))
	}
}
