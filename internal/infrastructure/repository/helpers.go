package repository

import (
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// setIf copies a non-nil patch field into an update map.
func setIf[T any](updates map[string]interface{}, column string, value *T) {
	if value != nil {
		updates[column] = *value
	}
}

// countBy returns row counts grouped by column.
func countBy(tx *gorm.DB, model interface{}, column string) (map[string]int64, error) {
	var rows []struct {
		GroupKey string
		Total    int64
	}
	err := tx.Model(model).
		Select(column + " AS group_key, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count by %s: %w", column, err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.GroupKey] = row.Total
	}
	return out, nil
}

// stringsJSON wraps a string slice for a JSON column update.
func stringsJSON(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		values = []string{}
	}
	return datatypes.JSONSlice[string](values)
}

// jsonText casts a JSON column to text in the dialect of tx.
func jsonText(tx *gorm.DB, column string) string {
	if tx.Dialector.Name() == "mysql" {
		return "CAST(" + column + " AS CHAR)"
	}
	return "CAST(" + column + " AS TEXT)"
}
