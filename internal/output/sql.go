package output

import (
	"fmt"
	"io"

	"ix-advisor/internal/engine"
)

// writeSQL emits the proposals as a script for review. Nothing in it is run
// by the advisor.
func writeSQL(w io.Writer, res *engine.Result) error {
	if _, err := fmt.Fprintf(w, "-- ix-advisor: %d proposed index(es). Review before running.\n", len(res.Proposals)); err != nil {
		return err
	}
	for _, e := range res.Errors {
		fmt.Fprintf(w, "-- skipped %s: %v\n", e.Database, e.Err)
	}

	for i, p := range res.Proposals {
		mi := p.Index
		fmt.Fprintf(w, "\n-- #%d %s improvement=%.2f seeks=%d scans=%d impact=%.1f%%\n",
			rank(i), mi.Database, mi.ImprovementMeasure, mi.UserSeeks, mi.UserScans, mi.AvgUserImpact)
		switch {
		case p.Renamed:
			fmt.Fprintf(w, "-- renamed: generated name collided with #%d\n", rank(p.CollidesWith))
		case p.CollidesWith >= 0:
			fmt.Fprintf(w, "-- WARNING: name collides with #%d, rename before use\n", rank(p.CollidesWith))
		}
		if _, err := fmt.Fprintf(w, "%s\nGO\n", p.Statement); err != nil {
			return err
		}
	}
	return nil
}
