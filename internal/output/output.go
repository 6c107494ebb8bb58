// Package output prints parse results for the command line tools.
package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"kiri/internal/ast"
	"kiri/internal/config"
	kirierrors "kiri/internal/errors"
	"kiri/internal/parser"
)

type Printer struct {
	w      io.Writer
	format string
	spans  bool
}

func New(w io.Writer, cfg config.OutputConfig) *Printer {
	return &Printer{w: w, format: cfg.Format, spans: cfg.Spans}
}

// Tree writes the expression in the configured format. The tree format is
// the source-like printer; spans only show up in YAML.
func (p *Printer) Tree(expr ast.SpannedExpr) error {
	if p.format != "yaml" {
		_, err := fmt.Fprintln(p.w, expr.Value.String())
		return err
	}

	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(ast.EncodeYAML(expr, p.spans)); err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}
	return enc.Close()
}

// Diagnostics renders every error in the sink against its source, followed
// by a summary line. Nothing is written for an empty sink.
func (p *Printer) Diagnostics(filename, source string, errs *parser.Errors) {
	if errs.Len() == 0 {
		return
	}
	index := ast.NewLineIndex(filename, source)
	reporter := kirierrors.NewErrorReporter(filename, source)
	fmt.Fprint(p.w, reporter.FormatAll(kirierrors.FromParseErrors(errs, index)))
}
