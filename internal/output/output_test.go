package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiri/internal/config"
	"kiri/internal/parser"
	"kiri/internal/symbol"
)

func parse(t *testing.T, source string) (*parser.Errors, func(*Printer) error) {
	t.Helper()
	errs := &parser.Errors{}
	expr := parser.ParseSource("test.kiri", source, symbol.NewTable(), errs)
	return errs, func(p *Printer) error { return p.Tree(expr) }
}

func TestTreeFormat(t *testing.T) {
	var buf bytes.Buffer
	errs, tree := parse(t, "f x")
	require.Zero(t, errs.Len())

	require.NoError(t, tree(New(&buf, config.OutputConfig{Format: "tree"})))
	assert.Equal(t, "f x\n", buf.String())
}

func TestYAMLFormat(t *testing.T) {
	var buf bytes.Buffer
	_, tree := parse(t, "f x")

	require.NoError(t, tree(New(&buf, config.OutputConfig{Format: "yaml", Spans: true})))
	out := buf.String()
	assert.Contains(t, out, "node: ")
	assert.Contains(t, out, "span: ")
	assert.Contains(t, out, "func:")
}

func TestDiagnostics(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	errs, _ := parse(t, "(1, 2)")
	New(&buf, config.OutputConfig{}).Diagnostics("test.kiri", "(1, 2)", errs)

	out := buf.String()
	assert.Contains(t, out, "error[E0102]: tuples are not supported")
	assert.Contains(t, out, "test.kiri:1:1")
	assert.Contains(t, out, "1 error\n")

	buf.Reset()
	New(&buf, config.OutputConfig{}).Diagnostics("test.kiri", "x", &parser.Errors{})
	assert.Empty(t, buf.String())
}
