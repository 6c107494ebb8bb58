package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kiri/internal/output"
	"kiri/internal/parser"
	"kiri/internal/symbol"
)

// errParseFailed is returned after diagnostics have been printed.
var errParseFailed = errors.New("parse failed")

var format string

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the syntax tree of a file",
	Long: `Parses a file and prints its syntax tree. When the parser reports
errors, the diagnostics are printed instead and the exit status is 1.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&format, "format", "f", "", `output format, "tree" or "yaml" (default from config)`)
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	path := args[0]

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	outputCfg := cfg.Output
	if format != "" {
		outputCfg.Format = format
	}
	printer := output.New(cmd.OutOrStdout(), outputCfg)

	errs := &parser.Errors{}
	expr := parser.ParseSource(path, string(source), symbol.NewTable(), errs)
	duration := formatDuration(time.Since(startTime))

	if errs.Len() > 0 {
		printer.Diagnostics(path, string(source), errs)
		fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("Parsing failed after %s", duration))
		return errParseFailed
	}

	if err := printer.Tree(expr); err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("Successfully parsed %s in %s", path, duration))
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
