package repository

import "strings"

// orderClause resolves untrusted sort parameters against a column allow-list
// and returns a fragment safe to interpolate into an ORDER BY clause.
// Matching is case-insensitive. Anything outside the allow-list, including
// blank input, resolves to the id column. Any direction other than "desc"
// resolves to ascending; invalid direction is not an error.
func orderClause(allowed []string, sortBy, sortDirection string) string {
	column := "id"
	want := strings.TrimSpace(sortBy)
	for _, col := range allowed {
		if strings.EqualFold(want, col) {
			column = col
			break
		}
	}

	direction := "ASC"
	if strings.EqualFold(strings.TrimSpace(sortDirection), "desc") {
		direction = "DESC"
	}

	return column + " " + direction
}
