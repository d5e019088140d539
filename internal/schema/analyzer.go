package schema

import (
	"context"
	"fmt"
	"sort"

	"ix-advisor/internal/dialect"
)

// Selecter is satisfied by *sqlx.DB and *sqlx.Tx.
type Selecter interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Analyze loads the missing-index suggestions recorded for database, drops
// those below opts.MinImprovement and returns the rest ordered by
// improvement measure, capped at opts.Top.
func Analyze(ctx context.Context, q Selecter, d dialect.Dialect, database string, opts Options) ([]*MissingIndex, error) {
	target := d.GetDatabaseName(database)

	var rows []*MissingIndex
	if err := q.SelectContext(ctx, &rows, d.MissingIndexQuery(), target); err != nil {
		return nil, fmt.Errorf("failed to query missing indexes in %s: %w", target, err)
	}

	var kept []*MissingIndex
	for _, r := range rows {
		if r.Database == "" {
			r.Database = target
		}
		if r.ImprovementMeasure == 0 {
			r.ImprovementMeasure = r.Improvement()
		}
		if r.ImprovementMeasure < opts.MinImprovement {
			continue
		}
		kept = append(kept, r)
	}

	SortByImprovement(kept)

	if opts.Top > 0 && len(kept) > opts.Top {
		kept = kept[:opts.Top]
	}
	return kept, nil
}

// Databases lists the online user databases.
func Databases(ctx context.Context, q Selecter, d dialect.Dialect) ([]string, error) {
	var names []string
	if err := q.SelectContext(ctx, &names, d.DatabasesQuery()); err != nil {
		return nil, fmt.Errorf("failed to list databases: %w", err)
	}
	return names, nil
}

// CurrentDatabase returns the database the connection is using.
func CurrentDatabase(ctx context.Context, q Selecter, d dialect.Dialect) (string, error) {
	var names []string
	if err := q.SelectContext(ctx, &names, d.CurrentDatabaseQuery()); err != nil {
		return "", fmt.Errorf("failed to get database name: %w", err)
	}
	if len(names) == 0 || names[0] == "" {
		return "", fmt.Errorf("no database selected in DSN")
	}
	return names[0], nil
}

// SortByImprovement orders suggestions by improvement measure, highest
// first. Ties fall back to database then statement so output is stable.
func SortByImprovement(list []*MissingIndex) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.ImprovementMeasure != b.ImprovementMeasure {
			return a.ImprovementMeasure > b.ImprovementMeasure
		}
		if a.Database != b.Database {
			return a.Database < b.Database
		}
		return a.Statement < b.Statement
	})
}
