package dialect

import "fmt"

// GetDialect returns the Dialect implementation for a driver name.
// Missing-index statistics are only exposed by SQL Server, so every other
// driver is rejected.
func GetDialect(driver string) (Dialect, error) {
	switch driver {
	case "sqlserver", "mssql":
		return &MSSQLDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q: missing-index statistics require sqlserver", driver)
	}
}

// Ensure interface implementation
var _ Dialect = (*MSSQLDialect)(nil)
