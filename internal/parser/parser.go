// Package parser converts a raw command-line argument list into the
// options record, the pattern list, and at most one command error. It
// is a pure function over the argument slice and performs no I/O.
package parser

import (
	"strings"

	"github.com/harrison/myls/internal/models"
)

// Result is the outcome of scanning an argument list.
type Result struct {
	Options  models.Options
	Patterns []string
	Err      *models.CommandError
}

// Parse scans args left to right in a single pass. Option parsing ends
// permanently once pattern mode starts: at the first argument that is
// not a flag (a bare "-" counts), or at a literal "--". Every later
// argument is collected verbatim as a pattern, even if it looks like a
// flag. After the scan, --json together with --classic overrides any
// earlier error with the format-conflict error.
func Parse(args []string) Result {
	var (
		opts        models.Options
		patterns    []string
		slot        models.ErrorSlot
		patternMode bool
	)

	for _, arg := range args {
		switch {
		case patternMode:
			patterns = append(patterns, arg)
		case arg == "--":
			patternMode = true
		case strings.HasPrefix(arg, "--"):
			parseLongFlag(arg, &opts, &slot)
		case strings.HasPrefix(arg, "-") && arg != "-":
			parseShortCluster(arg, &opts, &slot)
		default:
			patterns = append(patterns, arg)
			patternMode = true
		}
	}

	if opts.JSON && opts.Classic {
		slot.Override(models.NewFormatConflictError())
	}

	return Result{Options: opts, Patterns: patterns, Err: slot.Err()}
}

// parseLongFlag handles a "--name" argument. Unknown names record an
// invalid-option error under the first-error-wins rule; the scan is
// never aborted, so later valid flags and patterns still apply.
func parseLongFlag(arg string, opts *models.Options, slot *models.ErrorSlot) {
	switch strings.TrimPrefix(arg, "--") {
	case "help":
		// help and version suppress each other, first one wins
		if !opts.Version {
			opts.Help = true
		}
	case "version":
		if !opts.Help {
			opts.Version = true
		}
	case "all":
		opts.All = true
	case "long":
		opts.Long = true
	case "json":
		opts.JSON = true
	case "classic":
		opts.Classic = true
	case "regex":
		opts.Regex = true
	default:
		slot.Record(models.NewUnrecognizedOptionError(arg))
	}
}

// parseShortCluster handles a "-abc" argument by evaluating each
// character as an individual flag. A '-' character records a syntax
// error and then still falls through to the unknown-flag check below,
// which is a no-op whenever an error is already held.
func parseShortCluster(arg string, opts *models.Options, slot *models.ErrorSlot) {
	for _, ch := range arg[1:] {
		if ch == '-' {
			slot.Record(models.NewSyntaxError())
		}
		switch ch {
		case 'h':
			if !opts.Version {
				opts.Help = true
			}
		case 'v':
			if !opts.Help {
				opts.Version = true
			}
		case 'a':
			opts.All = true
		case 'l':
			opts.Long = true
		default:
			slot.Record(models.NewInvalidOptionError(ch))
		}
	}
}
