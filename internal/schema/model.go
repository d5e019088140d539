package schema

import (
	"database/sql"
	"strings"
)

// MissingIndex is one row of the missing-index DMVs joined with its group
// statistics.
type MissingIndex struct {
	Database          string         `db:"database_name"`
	Schema            sql.NullString `db:"schema_name"`
	Object            sql.NullString `db:"object_name"`
	Statement         string         `db:"statement"` // [db].[schema].[table]
	EqualityColumns   sql.NullString `db:"equality_columns"`
	InequalityColumns sql.NullString `db:"inequality_columns"`
	IncludedColumns   sql.NullString `db:"included_columns"`

	UniqueCompiles     int64        `db:"unique_compiles"`
	UserSeeks          int64        `db:"user_seeks"`
	UserScans          int64        `db:"user_scans"`
	LastUserSeek       sql.NullTime `db:"last_user_seek"`
	AvgTotalUserCost   float64      `db:"avg_total_user_cost"`
	AvgUserImpact      float64      `db:"avg_user_impact"`
	ImprovementMeasure float64      `db:"improvement_measure"`
}

// TableName is the schema-qualified table the index belongs to. When the
// object is not visible to the login, the DMV statement text is used.
func (m *MissingIndex) TableName() string {
	if m.Schema.Valid && m.Object.Valid {
		return m.Schema.String + "." + m.Object.String
	}
	return m.Statement
}

// KeyColumns returns the equality and inequality lists in index key order.
func (m *MissingIndex) KeyColumns() []string {
	return []string{
		strings.TrimSpace(m.EqualityColumns.String),
		strings.TrimSpace(m.InequalityColumns.String),
	}
}

// Improvement recomputes the score from the raw statistics.
func (m *MissingIndex) Improvement() float64 {
	return m.AvgTotalUserCost * (m.AvgUserImpact / 100) * float64(m.UserSeeks+m.UserScans)
}

// Options controls which suggestions Analyze keeps.
type Options struct {
	Top            int     // 0 keeps all
	MinImprovement float64 // suggestions scoring below are dropped
}
