package engine

import (
	"strconv"
	"unicode/utf8"

	"ix-advisor/internal/dialect"
	"ix-advisor/internal/ixname"
)

// DetectCollisions marks each proposal whose name was already produced by an
// earlier one and returns how many were marked.
func DetectCollisions(proposals []*Proposal) int {
	seen := make(map[string]int)
	count := 0
	for i, p := range proposals {
		p.CollidesWith = -1
		if first, ok := seen[p.Name]; ok {
			p.CollidesWith = first
			count++
			continue
		}
		seen[p.Name] = i
	}
	return count
}

// Dedupe renames colliding proposals by replacing the tail of the name with
// _2, _3, ... so the result stays within the namer's limit. The first
// proposal for a name keeps it. It returns the number of renamed proposals.
func Dedupe(d dialect.Dialect, n ixname.Namer, proposals []*Proposal) int {
	taken := make(map[string]bool, len(proposals))
	for _, p := range proposals {
		taken[p.Name] = true
	}

	firsts := make(map[string]bool, len(proposals))
	renamed := 0
	for _, p := range proposals {
		if !firsts[p.Name] {
			firsts[p.Name] = true
			continue
		}

		base := ixname.Unwrap(p.Name)
		for k := 2; ; k++ {
			candidate := ixname.Wrap(withSuffix(base, "_"+strconv.Itoa(k), n.Limit()))
			if !taken[candidate] {
				taken[candidate] = true
				firsts[candidate] = true
				p.rename(d, candidate)
				renamed++
				break
			}
		}
	}
	return renamed
}

func withSuffix(base, suffix string, limit int) string {
	keep := limit - utf8.RuneCountInString(suffix)
	if keep <= 0 {
		return suffix
	}
	return ixname.Truncate(base, keep) + suffix
}
