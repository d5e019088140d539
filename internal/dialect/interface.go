package dialect

// Dialect abstracts the engine-specific SQL the advisor issues and emits.
type Dialect interface {
	// Catalog Queries
	MissingIndexQuery() string
	DatabasesQuery() string
	CurrentDatabaseQuery() string

	// Statement Generation
	CreateIndexStatement(name, object string, keyColumns []string, included string) string

	// Helpers
	GetDatabaseName(input string) string
}
