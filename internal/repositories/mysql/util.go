// internal/repositories/mysql/util.go
// Helper query: klausa IN dengan placeholder

package mysql

import "strings"

// inClause menghasilkan "(?,?,?)" dan args untuk ids; ids kosong -> "", nil.
func inClause(ids []string) (string, []any) {
	if len(ids) == 0 {
		return "", nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return "(" + strings.Repeat("?,", len(ids)-1) + "?)", args
}
