package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"kiri/internal/ast"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError is a diagnostic ready for display
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0100
	Message     string       // Primary error message
	Position    ast.Position // Location in source
	Length      int          // Length of the problematic region
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string // Description of the suggestion
	Replacement string // Suggested replacement text (optional)
}

// ErrorReporter renders diagnostics against the source they refer to
type ErrorReporter struct {
	filename string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

var (
	bold = color.New(color.Bold).SprintFunc()
	dim  = color.New(color.Faint).SprintFunc()
)

// FormatError renders a header, the offending line with a caret marker and
// its neighbours, then suggestions, notes and help.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder
	width := lineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", width)
	gutter := dim("│")

	// Header: error[E0100]: message
	levelColor := levelColor(err.Level)
	if err.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", levelColor(string(err.Level)), err.Message)
	}
	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column)
	fmt.Fprintf(&b, "%s %s\n", indent, gutter)

	line := err.Position.Line
	if line > 1 && line-1 <= len(er.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, line-1)), gutter, er.lines[line-2])
	}
	if line > 0 && line <= len(er.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, line)), gutter, er.lines[line-1])
		fmt.Fprintf(&b, "%s %s %s\n", indent, gutter, marker(err.Position.Column, err.Length, err.Level))
	}
	if line > 0 && line < len(er.lines) && strings.TrimSpace(er.lines[line]) != "" {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, line+1)), gutter, er.lines[line])
	}

	if len(err.Suggestions) > 0 {
		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Fprintf(&b, "%s %s\n", indent, gutter)
		for i, s := range err.Suggestions {
			if i == 0 {
				fmt.Fprintf(&b, "%s %s %s: %s\n", indent, cyan("help"), cyan("try"), s.Message)
			} else {
				fmt.Fprintf(&b, "%s %s %s\n", indent, cyan("    "), s.Message)
			}
			if s.Replacement != "" {
				fmt.Fprintf(&b, "%s %s %s\n", indent, cyan("│"), cyan(s.Replacement))
			}
		}
	}

	for _, note := range err.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, gutter, color.New(color.FgBlue).Sprint("note:"), note)
	}
	if err.HelpText != "" {
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, gutter, color.New(color.FgGreen).Sprint("help:"), err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

// FormatAll formats every error in order followed by a summary line.
func (er *ErrorReporter) FormatAll(errs []CompilerError) string {
	var b strings.Builder
	for _, err := range errs {
		b.WriteString(er.FormatError(err))
	}
	if summary := Summary(errs); summary != "" {
		b.WriteString(summary)
		b.WriteString("\n")
	}
	return b.String()
}

// Summary counts errors and warnings, e.g. "2 errors, 1 warning".
func Summary(errs []CompilerError) string {
	var errors, warnings int
	for _, err := range errs {
		if err.Level == Warning {
			warnings++
		} else {
			errors++
		}
	}

	var parts []string
	if errors > 0 {
		parts = append(parts, plural(errors, "error"))
	}
	if warnings > 0 {
		parts = append(parts, plural(warnings, "warning"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func levelColor(level ErrorLevel) func(...any) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// marker underlines length columns starting at column.
func marker(column, length int, level ErrorLevel) string {
	spaces := strings.Repeat(" ", max(0, column-1))
	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if level == Warning {
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	}
	return spaces + markerColor(strings.Repeat("^", max(1, length)))
}

// lineNumberWidth keeps the gutter at least three columns wide.
func lineNumberWidth(line int) int {
	return max(3, len(fmt.Sprint(line)))
}
