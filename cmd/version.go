package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/terror/rsql/sql"
)

func init() {
	rsqlCmd.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Print the version number of rsql",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), sql.Version())
			},
		})

	rsqlCmd.AddCommand(
		&cobra.Command{
			Use:   "config",
			Short: "Print the config variables and where each was set",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				cfg.Write(cmd.OutOrStdout())
			},
		})
}
