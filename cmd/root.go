package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	dsn     string
	driver  string
)

var RootCmd = &cobra.Command{
	Use:   "ix-advisor",
	Short: "Name and script SQL Server missing-index suggestions",
	Long: `IX ADVISOR 🦅 - SQL Server missing-index advisor

Reads the missing-index DMVs, scores each suggestion and proposes a named
CREATE INDEX statement for it. Nothing is executed: the output is for review.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./ix-advisor.yaml)")
	RootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "SQL Server connection string (overrides the active database in config)")
	RootCmd.PersistentFlags().StringVar(&driver, "driver", "sqlserver", "database/sql driver name used with --dsn")
	RootCmd.PersistentFlags().Int("ceiling", 0, "maximum index name length (overrides naming.ceiling)")
	RootCmd.PersistentFlags().Bool("ceiling-includes-delimiters", false, "count the surrounding brackets against the ceiling")

	setDefaults()
	bindRootFlags()
}

// setDefaults registers the fallback for every setting (Flag > Config > Default).
func setDefaults() {
	viper.SetDefault("database.driver", "sqlserver")

	viper.SetDefault("naming.prefix", "IX_")
	viper.SetDefault("naming.separator", "_")
	viper.SetDefault("naming.table_width", 40)
	viper.SetDefault("naming.columns_width", 20)
	viper.SetDefault("naming.ceiling", 128)
	viper.SetDefault("naming.ceiling_includes_delimiters", false)

	viper.SetDefault("settings.top", 0)
	viper.SetDefault("settings.min_improvement", 0.0)
	viper.SetDefault("settings.format", "table")
}

func bindRootFlags() {
	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))
	viper.BindPFlag("database.driver", RootCmd.PersistentFlags().Lookup("driver"))
	viper.BindPFlag("naming.ceiling", RootCmd.PersistentFlags().Lookup("ceiling"))
	viper.BindPFlag("naming.ceiling_includes_delimiters", RootCmd.PersistentFlags().Lookup("ceiling-includes-delimiters"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("ix-advisor")
		viper.SetConfigType("yaml")
	}

	// IXADV_DATABASE_DSN, IXADV_SETTINGS_TOP, ...
	viper.SetEnvPrefix("IXADV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
