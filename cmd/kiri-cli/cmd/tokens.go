package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"kiri/internal/layout"
	"kiri/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream after layout",
	Long: `Prints one token per line with its position. Tokens inserted by the
layout rule are marked with an asterisk.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	raw, lexErrs := lexer.Scan(path, string(source))
	tokens, layoutErrs := layout.Transform(raw)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, tok := range tokens {
		mark := ""
		if tok.Synthetic {
			mark = "*"
		}
		fmt.Fprintf(w, "%d:%d\t%s%s\t%s\n", tok.Pos.Line, tok.Pos.Column, tok.Type, mark, tok.String())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, err := range lexErrs {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s:%s\n", path, err)
	}
	for _, err := range layoutErrs {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s:%s\n", path, err)
	}
	if len(lexErrs)+len(layoutErrs) > 0 {
		return errParseFailed
	}
	return nil
}
