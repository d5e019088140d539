package engine

import (
	"ix-advisor/internal/dialect"
	"ix-advisor/internal/ixname"
	"ix-advisor/internal/schema"
)

// Proposal is a named CREATE INDEX statement for one suggestion.
type Proposal struct {
	Index     *schema.MissingIndex
	Name      string
	Statement string

	// CollidesWith is the position of the earlier proposal that produced the
	// same name, or -1.
	CollidesWith int
	// Renamed is set when Dedupe replaced the generated name.
	Renamed bool
}

// Generate names mi and renders its CREATE INDEX statement.
func Generate(d dialect.Dialect, n ixname.Namer, mi *schema.MissingIndex) *Proposal {
	name := n.Name(mi.TableName(), mi.EqualityColumns, mi.InequalityColumns)
	return &Proposal{
		Index:        mi,
		Name:         name,
		Statement:    d.CreateIndexStatement(name, mi.Statement, mi.KeyColumns(), mi.IncludedColumns.String),
		CollidesWith: -1,
	}
}

// rename swaps in a new name and re-renders the statement.
func (p *Proposal) rename(d dialect.Dialect, name string) {
	p.Name = name
	p.Statement = d.CreateIndexStatement(name, p.Index.Statement, p.Index.KeyColumns(), p.Index.IncludedColumns.String)
	p.Renamed = true
}
