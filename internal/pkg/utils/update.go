package utils

import (
	"clinic-service/internal/app/models"
	"fmt"
	"sort"
	"strings"
)

// BuildUpdateQuery renders "UPDATE table SET a = $1, b = $2, updated_at = NOW() WHERE id = $3".
// Column names come from trusted allowlists, never from request keys.
func BuildUpdateQuery(table string, updateData map[string]interface{}, id int64, touchUpdatedAt bool) (string, []interface{}) {
	columns := make([]string, 0, len(updateData))
	for column := range updateData {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	assignments := make([]string, 0, len(columns)+1)
	args := make([]interface{}, 0, len(columns)+1)
	for i, column := range columns {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, i+1))
		args = append(args, updateData[column])
	}
	if touchUpdatedAt {
		assignments = append(assignments, "updated_at = NOW()")
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(assignments, ", "), len(args))
	return query, args
}

// ApplyPredicate appends a scope predicate to base and returns the extended
// argument list. hasWhere tells whether base already carries a WHERE clause.
func ApplyPredicate(base string, hasWhere bool, predicate models.Predicate, args []interface{}) (string, []interface{}) {
	if predicate.IsEmpty() {
		return base, args
	}
	keyword := " WHERE "
	if hasWhere {
		keyword = " AND "
	}
	args = append(args, predicate.OwnerID)
	return base + keyword + predicate.SQL(len(args)), args
}
