package services

// keysResult carries the key-presence criterion score.
type keysResult struct {
	Score float64
}

// evaluateKeysPresence rewards tables for declaring keys. Half the weight
// comes from the proportion of tables with at least one primary key column,
// half from the proportion with at least one foreign key column. A table
// needs a key, not every column to be one.
func evaluateKeysPresence(groups []TableGroup, weight float64) keysResult {
	if len(groups) == 0 {
		return keysResult{}
	}

	tablesWithPrimaryKey := 0
	tablesWithForeignKey := 0
	for _, group := range groups {
		hasPrimary, hasForeign := false, false
		for _, col := range group.Columns {
			hasPrimary = hasPrimary || col.PrimaryKey
			hasForeign = hasForeign || col.ForeignKey
		}
		if hasPrimary {
			tablesWithPrimaryKey++
		}
		if hasForeign {
			tablesWithForeignKey++
		}
	}

	numTables := float64(len(groups))
	primaryScore := float64(tablesWithPrimaryKey) / numTables * (weight / 2)
	foreignScore := float64(tablesWithForeignKey) / numTables * (weight / 2)
	return keysResult{Score: primaryScore + foreignScore}
}
