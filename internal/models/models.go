// Package models defines the shared data types threaded between the
// argument parser, the pattern filter, and the renderer: the options
// record, the single-slot command error, and the output record.
package models

import "fmt"

// Process exit codes. Exactly one code governs process exit.
const (
	ExitSuccess         = 0
	ExitUnexpected      = 1
	ExitSyntax          = 2
	ExitPatternNotFound = 3
	ExitInvalidOption   = 4
	ExitFormatConflict  = 5
)

// Usage and hint lines appended to fatal option diagnostics.
const (
	UsageLine = "Usage: my-ls [OPTION]... [--] [PATTERN]..."
	HelpHint  = "Try 'my-ls --help' for more information."
)

// Options is the fully parsed flag state. All fields default to false
// and are determined in a single parse pass before any filtering or
// rendering occurs. JSON and Classic are mutually exclusive by
// validation, not by shape.
type Options struct {
	Help    bool
	Version bool
	All     bool
	Long    bool
	JSON    bool
	Classic bool
	Regex   bool
}

// CommandError is a user-facing command error represented as data
// rather than a Go error. It carries the exit code, the diagnostic
// lines to print, and the syntax-error marker that short-circuits all
// rendering.
type CommandError struct {
	Code        int
	Messages    []string
	SyntaxError bool
}

// ErrorSlot holds at most one CommandError. Record keeps the first
// error and ignores the rest; Override replaces whatever is held.
// The json/classic conflict is the only caller of Override.
type ErrorSlot struct {
	err *CommandError
}

// Record stores err only if the slot is empty.
func (s *ErrorSlot) Record(err *CommandError) {
	if s.err == nil {
		s.err = err
	}
}

// Override unconditionally replaces the held error.
func (s *ErrorSlot) Override(err *CommandError) {
	s.err = err
}

// Err returns the held error, or nil if none was recorded.
func (s *ErrorSlot) Err() *CommandError {
	return s.err
}

// OutputRecord is one rendered listing entry. Type and Size are only
// populated in long format.
type OutputRecord struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	Size string `json:"size,omitempty"`
}

// NewUnrecognizedOptionError reports an unknown long flag such as "--bogus".
func NewUnrecognizedOptionError(arg string) *CommandError {
	return &CommandError{
		Code: ExitInvalidOption,
		Messages: []string{
			fmt.Sprintf("my-ls: unrecognized option '%s'", arg),
			UsageLine,
			HelpHint,
		},
	}
}

// NewInvalidOptionError reports an unknown character in a short-flag cluster.
func NewInvalidOptionError(flag rune) *CommandError {
	return &CommandError{
		Code: ExitInvalidOption,
		Messages: []string{
			fmt.Sprintf("my-ls: invalid option -- '%c'", flag),
			UsageLine,
			HelpHint,
		},
	}
}

// NewSyntaxError reports a lone '-' inside a short-flag cluster.
func NewSyntaxError() *CommandError {
	return &CommandError{
		Code:        ExitSyntax,
		SyntaxError: true,
		Messages: []string{
			"my-ls: syntax error near unexpected token '-'",
			UsageLine,
			HelpHint,
		},
	}
}

// NewFormatConflictError reports --json and --classic given together.
func NewFormatConflictError() *CommandError {
	return &CommandError{
		Code: ExitFormatConflict,
		Messages: []string{
			"my-ls: --json and --classic are mutually exclusive",
			UsageLine,
			HelpHint,
		},
	}
}

// NewPatternNotFoundError reports patterns that matched no entries, one
// line per pattern in their original order. This error is non-fatal:
// matched entries still render, the exit code becomes 3 after output.
func NewPatternNotFoundError(patterns []string) *CommandError {
	messages := make([]string, 0, len(patterns))
	for _, p := range patterns {
		messages = append(messages, fmt.Sprintf("my-ls: %s: No files or directories match the pattern", p))
	}
	return &CommandError{
		Code:     ExitPatternNotFound,
		Messages: messages,
	}
}
