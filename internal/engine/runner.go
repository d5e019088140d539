package engine

import (
	"context"
	"log"

	"ix-advisor/internal/dialect"
	"ix-advisor/internal/ixname"
	"ix-advisor/internal/schema"
)

// Options controls a run across databases.
type Options struct {
	schema.Options
	Dedupe bool
}

// DatabaseError records a database that could not be analyzed.
type DatabaseError struct {
	Database string
	Err      error
}

// Result is the outcome of Run.
type Result struct {
	Proposals  []*Proposal
	Errors     []DatabaseError
	Collisions int
	Renamed    int
}

// Run analyzes each database in turn and names every suggestion. A database
// that fails is recorded in Result.Errors and the run continues. onProgress,
// if set, is called once per database.
func Run(ctx context.Context, q schema.Selecter, d dialect.Dialect, n ixname.Namer, databases []string, opts Options, onProgress func()) *Result {
	res := &Result{}
	var found []*schema.MissingIndex

	for _, db := range databases {
		if err := ctx.Err(); err != nil {
			res.Errors = append(res.Errors, DatabaseError{Database: db, Err: err})
			if onProgress != nil {
				onProgress()
			}
			continue
		}

		list, err := schema.Analyze(ctx, q, d, db, opts.Options)
		if err != nil {
			log.Printf("Warning: skipping %s: %v\n", db, err)
			res.Errors = append(res.Errors, DatabaseError{Database: db, Err: err})
		} else {
			found = append(found, list...)
		}

		if onProgress != nil {
			onProgress()
		}
	}

	schema.SortByImprovement(found)
	for _, mi := range found {
		res.Proposals = append(res.Proposals, Generate(d, n, mi))
	}

	res.Collisions = DetectCollisions(res.Proposals)
	if opts.Dedupe && res.Collisions > 0 {
		res.Renamed = Dedupe(d, n, res.Proposals)
	}
	return res
}
