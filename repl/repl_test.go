package repl

import (
	"bytes"
	"io"
	"testing"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiri/internal/config"
)

type scriptedReader struct {
	lines   []string
	prompts []string
}

func (r *scriptedReader) Prompt(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	if line == "^C" {
		return "", liner.ErrPromptAborted
	}
	return line, nil
}

func newSession(out *bytes.Buffer) (*Session, *[]string) {
	color.NoColor = true
	session := NewSession(config.Default(), out)
	var entries []string
	session.OnEntry = func(entry string) { entries = append(entries, entry) }
	return session, &entries
}

func TestSessionContinuesIncompleteEntries(t *testing.T) {
	var out bytes.Buffer
	session, entries := newSession(&out)
	reader := &scriptedReader{lines: []string{"f x", "let x =", "  1", "x", ":quit", "ignored"}}

	require.NoError(t, session.Run(reader))

	assert.Equal(t, []string{"f x", "let x =\n  1\nx"}, *entries)
	assert.Equal(t, []string{"kiri> ", "kiri> ", "  ... ", "  ... ", "kiri> "}, reader.prompts)
	assert.Contains(t, out.String(), "f x\n")
	assert.Contains(t, out.String(), "let x")
	assert.Contains(t, out.String(), " in x")
}

func TestSessionPrintsDiagnostics(t *testing.T) {
	var out bytes.Buffer
	session, _ := newSession(&out)

	require.NoError(t, session.Run(&scriptedReader{lines: []string{"(1, 2)"}}))
	assert.Contains(t, out.String(), "error[E0102]: tuples are not supported")
	assert.Contains(t, out.String(), "<repl>:1:1")
}

func TestSessionCommands(t *testing.T) {
	var out bytes.Buffer
	session, entries := newSession(&out)

	require.NoError(t, session.Run(&scriptedReader{lines: []string{"", ":help", ":bogus", ":q"}}))
	assert.Empty(t, *entries)
	assert.Contains(t, out.String(), "syntax tree")
	assert.Contains(t, out.String(), "unknown command :bogus")
}

func TestBlankLineEndsContinuation(t *testing.T) {
	var out bytes.Buffer
	session, entries := newSession(&out)

	require.NoError(t, session.Run(&scriptedReader{lines: []string{"let x = 1", ""}}))
	require.Len(t, *entries, 1)
	assert.Contains(t, out.String(), "expected in")
}

func TestAbortDiscardsPendingEntry(t *testing.T) {
	var out bytes.Buffer
	session, entries := newSession(&out)
	reader := &scriptedReader{lines: []string{"let x =", "^C", "y"}}

	require.NoError(t, session.Run(reader))
	assert.Equal(t, []string{"y"}, *entries)
	assert.Equal(t, []string{"kiri> ", "  ... ", "kiri> ", "kiri> "}, reader.prompts)
}
