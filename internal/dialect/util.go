package dialect

import (
	"strings"
)

// JoinColumns joins the non-empty column lists with ", ".
// The DMVs return each list already comma separated, so the result is a
// valid key column list.
func JoinColumns(lists ...string) string {
	var parts []string
	for _, l := range lists {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, ", ")
}
