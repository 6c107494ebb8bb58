package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"kiri/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse entries interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "Kiri REPL. Type :quit to exit.")
		return repl.Start(cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
