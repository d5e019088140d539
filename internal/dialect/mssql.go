package dialect

import (
	"fmt"
	"strings"

	_ "github.com/denisenkom/go-mssqldb" // SQL Server Driver
)

type MSSQLDialect struct{}

// Helper: MSSQL Driver (go-mssqldb) prefers @p1, @p2 named parameters over ?

// MissingIndexQuery returns one row per missing-index suggestion recorded for
// the database bound to @p1. Schema and object names resolve to NULL when the
// login cannot see the object.
func (d *MSSQLDialect) MissingIndexQuery() string {
	return `
		SELECT
			DB_NAME(mid.database_id) AS database_name,
			OBJECT_SCHEMA_NAME(mid.object_id, mid.database_id) AS schema_name,
			OBJECT_NAME(mid.object_id, mid.database_id) AS object_name,
			mid.statement AS statement,
			mid.equality_columns AS equality_columns,
			mid.inequality_columns AS inequality_columns,
			mid.included_columns AS included_columns,
			migs.unique_compiles AS unique_compiles,
			migs.user_seeks AS user_seeks,
			migs.user_scans AS user_scans,
			migs.last_user_seek AS last_user_seek,
			migs.avg_total_user_cost AS avg_total_user_cost,
			migs.avg_user_impact AS avg_user_impact,
			migs.avg_total_user_cost * (migs.avg_user_impact / 100.0) * (migs.user_seeks + migs.user_scans) AS improvement_measure
		FROM sys.dm_db_missing_index_groups mig WITH (NOLOCK)
		JOIN sys.dm_db_missing_index_group_stats migs WITH (NOLOCK)
			ON migs.group_handle = mig.index_group_handle
		JOIN sys.dm_db_missing_index_details mid WITH (NOLOCK)
			ON mig.index_handle = mid.index_handle
		WHERE mid.database_id = DB_ID(@p1)
		ORDER BY improvement_measure DESC
		OPTION (RECOMPILE)
	`
}

// DatabasesQuery lists online user databases (system databases have ids 1-4).
func (d *MSSQLDialect) DatabasesQuery() string {
	return `SELECT name FROM sys.databases WHERE database_id > 4 AND state_desc = 'ONLINE' ORDER BY name`
}

func (d *MSSQLDialect) CurrentDatabaseQuery() string {
	return `SELECT DB_NAME()`
}

func (d *MSSQLDialect) CreateIndexStatement(name, object string, keyColumns []string, included string) string {
	stmt := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", name, object, JoinColumns(keyColumns...))
	if included = strings.TrimSpace(included); included != "" {
		stmt += fmt.Sprintf(" INCLUDE (%s)", included)
	}
	return stmt + ";"
}

func (d *MSSQLDialect) GetDatabaseName(input string) string {
	if input == "" {
		return "master"
	}
	return input
}
