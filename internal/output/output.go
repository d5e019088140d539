// Package output renders advisor results as a table, YAML or a T-SQL script.
package output

import (
	"fmt"
	"io"
	"strings"

	"ix-advisor/internal/engine"
)

type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatSQL   Format = "sql"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatYAML, FormatSQL:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("invalid format: %s (use 'table', 'yaml' or 'sql')", s)
	}
}

// Write renders res to w in the given format.
func Write(w io.Writer, f Format, res *engine.Result) error {
	switch f {
	case FormatYAML:
		return writeYAML(w, res)
	case FormatSQL:
		return writeSQL(w, res)
	default:
		return writeTable(w, res)
	}
}

// rank is the 1-based position shown to operators.
func rank(i int) int { return i + 1 }
