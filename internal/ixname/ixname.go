// Package ixname builds bracket-delimited names for proposed indexes.
//
// Names are derived from the table and the column lists of a missing-index
// suggestion. The result is deterministic and never fails: illegal characters
// are stripped or replaced and over-long fragments are truncated.
package ixname

import (
	"database/sql"
	"strings"
	"unicode/utf8"
)

const (
	DefaultPrefix       = "IX_"
	DefaultSeparator    = "_"
	DefaultTableWidth   = 40
	DefaultColumnsWidth = 20
	// MaxIdentifierLength is the SQL Server sysname ceiling.
	MaxIdentifierLength = 128
)

// cleaner removes quoting brackets and turns separators into underscores.
var cleaner = strings.NewReplacer(
	"[", "",
	"]", "",
	".", "_",
	",", "_",
	" ", "_",
)

// Namer holds the naming parameters. Prefix and Separator are cleaned like
// the fragments. The zero value is not useful; start from Default().
type Namer struct {
	Prefix       string
	Separator    string
	TableWidth   int
	ColumnsWidth int
	Ceiling      int

	// CeilingIncludesDelimiters makes the surrounding brackets count
	// against Ceiling. Historically the ceiling was applied before wrapping,
	// so generated names could reach Ceiling+2 characters; that stays the
	// default so names match ones produced earlier.
	CeilingIncludesDelimiters bool
}

// Default returns the historical naming parameters.
func Default() Namer {
	return Namer{
		Prefix:       DefaultPrefix,
		Separator:    DefaultSeparator,
		TableWidth:   DefaultTableWidth,
		ColumnsWidth: DefaultColumnsWidth,
		Ceiling:      MaxIdentifierLength,
	}
}

// Sanitize names an index using the default parameters.
func Sanitize(tableName string, equalityColumns, inequalityColumns sql.NullString) string {
	return Default().Name(tableName, equalityColumns, inequalityColumns)
}

// Name returns the bracket-delimited index name. Absent column lists are
// treated as empty text.
func (n Namer) Name(tableName string, equalityColumns, inequalityColumns sql.NullString) string {
	return Wrap(n.Candidate(tableName, equalityColumns, inequalityColumns))
}

// Candidate returns the name without the surrounding brackets.
func (n Namer) Candidate(tableName string, equalityColumns, inequalityColumns sql.NullString) string {
	columns := equalityColumns.String + inequalityColumns.String

	table := Truncate(Clean(tableName), n.TableWidth)
	cols := Truncate(Clean(columns), n.ColumnsWidth)

	return Truncate(Clean(n.Prefix)+table+Clean(n.Separator)+cols, n.Limit())
}

// Limit is the maximum length of an unwrapped candidate. A non-positive
// Ceiling falls back to MaxIdentifierLength.
func (n Namer) Limit() int {
	ceiling := n.Ceiling
	if ceiling <= 0 {
		ceiling = MaxIdentifierLength
	}
	if n.CeilingIncludesDelimiters {
		if ceiling <= 2 {
			return 1
		}
		return ceiling - 2
	}
	return ceiling
}

// Clean strips '[' and ']' and replaces '.', ',' and ' ' with '_'.
// Clean(Clean(s)) == Clean(s).
func Clean(s string) string {
	return cleaner.Replace(s)
}

// Unwrap removes one pair of surrounding brackets, if present.
func Unwrap(name string) string {
	if len(name) >= 2 && name[0] == '[' && name[len(name)-1] == ']' {
		return name[1 : len(name)-1]
	}
	return name
}

// Wrap surrounds a candidate with brackets.
func Wrap(candidate string) string {
	return "[" + candidate + "]"
}

// Truncate keeps the first limit characters of s. A non-positive limit
// leaves s untouched.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

// Columns wraps a plain column list. An empty string is treated as absent.
func Columns(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
