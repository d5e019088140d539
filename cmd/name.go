package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
)

var raw bool

var nameCmd = &cobra.Command{
	Use:   "name TABLE [EQUALITY_COLUMNS] [INEQUALITY_COLUMNS]",
	Short: "Generate an index name without connecting",
	Long: `Generate the index name the report would use for the given table and column lists.
An empty argument or "-" means the list is absent.`,
	Example: `  ix-advisor name dbo.Orders CustomerID
  ix-advisor name "[dbo].[Big Table Name Here]" "Col1,Col2" Col3
  ix-advisor name dbo.Orders - OrderDate --raw`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := NamerFromConfig()
		eq, ineq := columnsArg(args, 1), columnsArg(args, 2)

		name := n.Name(args[0], eq, ineq)
		if raw {
			name = n.Candidate(args[0], eq, ineq)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), name)
		return err
	},
}

func columnsArg(args []string, i int) sql.NullString {
	if i >= len(args) || args[i] == "" || args[i] == "-" {
		return sql.NullString{}
	}
	return sql.NullString{String: args[i], Valid: true}
}

func init() {
	RootCmd.AddCommand(nameCmd)

	nameCmd.Flags().BoolVar(&raw, "raw", false, "Print the name without the surrounding brackets")
}
