package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"ix-advisor/internal/engine"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	warnColor   = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed)
)

func writeTable(w io.Writer, res *engine.Result) error {
	if len(res.Proposals) == 0 {
		headerColor.Fprintln(w, "No missing-index suggestions found.")
	} else {
		headerColor.Fprintf(w, "Missing-index suggestions (%d)\n", len(res.Proposals))

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tDATABASE\tIMPROVEMENT\tSEEKS\tSCANS\tIMPACT%\tNAME\tNOTE")
		for i, p := range res.Proposals {
			mi := p.Index
			fmt.Fprintf(tw, "%d\t%s\t%.2f\t%d\t%d\t%.1f\t%s\t%s\n",
				rank(i), mi.Database, mi.ImprovementMeasure, mi.UserSeeks, mi.UserScans,
				mi.AvgUserImpact, p.Name, note(p))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if res.Collisions > 0 {
		if res.Renamed > 0 {
			warnColor.Fprintf(w, "! %d name collision(s), %d renamed with a numeric suffix\n", res.Collisions, res.Renamed)
		} else {
			warnColor.Fprintf(w, "! %d name collision(s): rename before use or rerun with --dedupe\n", res.Collisions)
		}
	}
	for _, e := range res.Errors {
		errorColor.Fprintf(w, "└ Error: %s: %v\n", e.Database, e.Err)
	}
	return nil
}

func note(p *engine.Proposal) string {
	switch {
	case p.Renamed:
		return fmt.Sprintf("renamed (collided with #%d)", rank(p.CollidesWith))
	case p.CollidesWith >= 0:
		return fmt.Sprintf("collides with #%d", rank(p.CollidesWith))
	default:
		return ""
	}
}
