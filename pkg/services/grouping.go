package services

import (
	"github.com/schemascore/schemascore-engine/pkg/models"
)

// TableGroup is the subset of submitted columns that belong to one table.
type TableGroup struct {
	Key     models.TableKey
	Columns []models.ColumnDescriptor
}

// GroupByTable partitions columns by their owning table. Groups appear in
// first-seen order, and columns keep their original relative order within
// each group. Pure function, never mutates the input.
func GroupByTable(schema []models.ColumnDescriptor) []TableGroup {
	groups := make([]TableGroup, 0)
	indexByKey := make(map[models.TableKey]int)

	for _, col := range schema {
		key := col.Key()
		idx, ok := indexByKey[key]
		if !ok {
			idx = len(groups)
			indexByKey[key] = idx
			groups = append(groups, TableGroup{Key: key})
		}
		groups[idx].Columns = append(groups[idx].Columns, col)
	}

	return groups
}
