package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"ix-advisor/internal/ixname"
)

type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Active bool   `mapstructure:"active"`
}

// GetActiveDBConfig returns the currently active database configuration.
func GetActiveDBConfig() (*DBConfig, error) {
	var configs []DBConfig

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}

	if activeConfig.Driver == "" {
		activeConfig.Driver = viper.GetString("database.driver")
	}
	return activeConfig, nil
}

// ResolveDBConfig prefers an explicit DSN (flag or IXADV_DATABASE_DSN) over the
// active entry of the databases list.
func ResolveDBConfig() (*DBConfig, error) {
	if connStr := viper.GetString("database.dsn"); connStr != "" {
		return &DBConfig{
			Name:   "CLI",
			Driver: viper.GetString("database.driver"),
			DSN:    connStr,
			Active: true,
		}, nil
	}

	cfg, err := GetActiveDBConfig()
	if err != nil {
		return nil, fmt.Errorf("%w: ensure config file exists or use --dsn", err)
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database %q has no dsn", cfg.Name)
	}
	return cfg, nil
}

// NamerFromConfig builds the index namer from the naming section.
func NamerFromConfig() ixname.Namer {
	return ixname.Namer{
		Prefix:                    viper.GetString("naming.prefix"),
		Separator:                 viper.GetString("naming.separator"),
		TableWidth:                viper.GetInt("naming.table_width"),
		ColumnsWidth:              viper.GetInt("naming.columns_width"),
		Ceiling:                   viper.GetInt("naming.ceiling"),
		CeilingIncludesDelimiters: viper.GetBool("naming.ceiling_includes_delimiters"),
	}
}
