// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/tliron/commonlog"

	"kiri/internal/config"
	"kiri/internal/output"
	"kiri/internal/parser"
	"kiri/internal/symbol"
)

var log = commonlog.GetLogger("kiri.repl")

const entryName = "<repl>"

// LineReader is the part of liner.State the loop needs.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Start runs an interactive session on the terminal until :quit or EOF.
func Start(cfg *config.Config, out io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.REPL.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer saveHistory(ln, cfg.REPL.HistoryFile)

	session := NewSession(cfg, out)
	session.OnEntry = func(entry string) {
		ln.AppendHistory(strings.ReplaceAll(entry, "\n", " "))
	}
	return session.Run(ln)
}

func saveHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		log.Warningf("could not write history: %s", err)
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		log.Warningf("could not write history: %s", err)
	}
}

// Session parses entries one at a time. Each entry gets a fresh symbol
// table and error sink.
type Session struct {
	prompt       string
	continuation string
	out          io.Writer
	printer      *output.Printer

	// OnEntry is called with every complete, non-command entry.
	OnEntry func(entry string)
}

func NewSession(cfg *config.Config, out io.Writer) *Session {
	return &Session{
		prompt:       cfg.REPL.Prompt,
		continuation: cfg.REPL.ContinuationPrompt,
		out:          out,
		printer:      output.New(out, cfg.Output),
	}
}

// Run reads entries from r until :quit or end of input.
func (s *Session) Run(r LineReader) error {
	for {
		entry, ok := s.read(r)
		if !ok {
			fmt.Fprintln(s.out)
			return nil
		}

		trimmed := strings.TrimSpace(entry)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, ":"):
			if s.command(trimmed) {
				return nil
			}
			continue
		}

		if s.OnEntry != nil {
			s.OnEntry(entry)
		}
		s.Eval(entry)
	}
}

// command handles a colon command and reports whether the session ends.
func (s *Session) command(cmd string) bool {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(s.out, "Enter an expression to see its syntax tree. :quit exits.")
	default:
		fmt.Fprintf(s.out, "unknown command %s. Type :quit to exit.\n", cmd)
	}
	return false
}

// read collects lines until the accumulated entry no longer ends
// prematurely.
func (s *Session) read(r LineReader) (string, bool) {
	var b strings.Builder

	for {
		prompt := s.prompt
		if b.Len() > 0 {
			prompt = s.continuation
		}

		line, err := r.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			log.Errorf("prompt failed: %s", err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || strings.TrimSpace(line) == "" {
			return src, true
		}
		errs := &parser.Errors{}
		parser.ParseSource(entryName, src, symbol.NewTable(), errs)
		if !parser.IsIncomplete(errs) {
			return src, true
		}
	}
}

// Eval parses one entry and prints its tree, or its diagnostics when the
// parse reported errors.
func (s *Session) Eval(entry string) {
	errs := &parser.Errors{}
	expr := parser.ParseSource(entryName, entry, symbol.NewTable(), errs)
	if errs.Len() > 0 {
		s.printer.Diagnostics(entryName, entry, errs)
		return
	}
	if err := s.printer.Tree(expr); err != nil {
		fmt.Fprintln(s.out, color.RedString(err.Error()))
	}
}
