// Package schematest provides an in-memory stand-in for the catalog
// connection used by the schema and engine packages.
package schematest

import (
	"context"
	"fmt"
	"strings"

	"ix-advisor/internal/schema"
)

// Selecter answers SelectContext calls from canned data.
type Selecter struct {
	Indexes   map[string][]*schema.MissingIndex // keyed by database
	Databases []string
	Current   string
	Errors    map[string]error // keyed by database

	Queried []string // databases whose suggestions were requested
}

func (s *Selecter) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch d := dest.(type) {
	case *[]*schema.MissingIndex:
		if len(args) != 1 {
			return fmt.Errorf("expected one bind argument, got %d", len(args))
		}
		db, _ := args[0].(string)
		s.Queried = append(s.Queried, db)
		if err := s.Errors[db]; err != nil {
			return err
		}
		for _, mi := range s.Indexes[db] {
			c := *mi
			*d = append(*d, &c)
		}
		return nil
	case *[]string:
		if strings.Contains(query, "sys.databases") {
			*d = append(*d, s.Databases...)
			return nil
		}
		if s.Current != "" {
			*d = append(*d, s.Current)
		}
		return nil
	default:
		return fmt.Errorf("unsupported destination %T", dest)
	}
}

var _ schema.Selecter = (*Selecter)(nil)
