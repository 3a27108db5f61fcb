// Package filter selects the subset of directory entries that survive
// pattern matching or hidden-file filtering.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/harrison/myls/internal/models"
)

// Result holds the surviving entries plus any pattern diagnostics.
type Result struct {
	Files []string
	Err   *models.CommandError
}

// Passthrough reports whether filtering should be skipped entirely and
// the raw directory listing handed straight to the renderer: when a
// parse error was already recorded, when help or version was requested,
// or when --all is set and no patterns were given.
func Passthrough(opts models.Options, patterns []string, parseErr *models.CommandError) bool {
	if parseErr != nil || opts.Help || opts.Version {
		return true
	}
	return opts.All && len(patterns) == 0
}

// Apply filters entries against the given patterns. With patterns, an
// entry is kept if it matches at least one of them; patterns that
// matched nothing are reported through a non-fatal code-3 error, one
// line per pattern in their original order. Without patterns, entries
// starting with '.' are dropped unless --all is set. Output order
// always follows the entry order, never the pattern order.
//
// A pattern that does not compile under --regex is an unexpected error
// and aborts the run.
func Apply(entries []string, opts models.Options, patterns []string) (Result, error) {
	if len(patterns) == 0 {
		files := make([]string, 0, len(entries))
		for _, name := range entries {
			if opts.All || !isHidden(name) {
				files = append(files, name)
			}
		}
		return Result{Files: files}, nil
	}

	matchers, err := compileMatchers(patterns, opts.Regex)
	if err != nil {
		return Result{}, err
	}

	matchedBy := make([]bool, len(patterns))
	files := make([]string, 0, len(entries))
	for _, name := range entries {
		matched := false
		// evaluate every matcher so each pattern's hit state is tracked
		for i, matches := range matchers {
			if matches(name) {
				matchedBy[i] = true
				matched = true
			}
		}
		if matched {
			files = append(files, name)
		}
	}

	var missing []string
	for i, p := range patterns {
		if !matchedBy[i] {
			missing = append(missing, p)
		}
	}

	result := Result{Files: files}
	if len(missing) > 0 {
		result.Err = models.NewPatternNotFoundError(missing)
	}
	return result, nil
}

// compileMatchers builds one predicate per pattern: a compiled regular
// expression under regex mode, a case-sensitive string equality check
// otherwise.
func compileMatchers(patterns []string, regex bool) ([]func(string) bool, error) {
	matchers := make([]func(string) bool, len(patterns))
	for i, pattern := range patterns {
		pattern := pattern // capture per iteration (go directive < 1.22)
		if regex {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			matchers[i] = re.MatchString
			continue
		}
		matchers[i] = func(name string) bool { return name == pattern }
	}
	return matchers, nil
}

// isHidden reports whether name is a dotfile.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
