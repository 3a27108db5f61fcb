// Package display renders the final listing: it resolves long-format
// metadata, formats classic and JSON output, prints diagnostics, and
// reports the process exit code as a return value so callers stay
// testable.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/myls/internal/fileutil"
	"github.com/harrison/myls/internal/models"
)

// Renderer writes listing output to Stdout and diagnostics to Stderr.
type Renderer struct {
	stdout      io.Writer
	stderr      io.Writer
	version     string
	colorOutput bool
}

// NewRenderer creates a Renderer for the given output streams. Color
// is enabled for diagnostics only when stderr is a real terminal.
func NewRenderer(stdout, stderr io.Writer, version string) *Renderer {
	colorOutput := stderr == os.Stderr && isatty.IsTerminal(os.Stderr.Fd())
	return &Renderer{
		stdout:      stdout,
		stderr:      stderr,
		version:     version,
		colorOutput: colorOutput,
	}
}

// Render applies the output rules in strict priority order and returns
// the exit code the process should terminate with. A returned error
// means an unexpected failure (stat or encoding) that the caller maps
// to the generic failure code.
//
// Priority: syntax error, then help, then version, then any fatal
// command error, then the listing itself. Pattern-not-found (code 3)
// is non-fatal: its diagnostics print before the listing and the code
// is reported only after output.
func (r *Renderer) Render(files []string, opts models.Options, cmdErr *models.CommandError) (int, error) {
	if cmdErr != nil && cmdErr.SyntaxError {
		r.printDiagnostics(cmdErr)
		return cmdErr.Code, nil
	}
	if opts.Help {
		fmt.Fprint(r.stderr, HelpText)
		return models.ExitSuccess, nil
	}
	if opts.Version {
		fmt.Fprintln(r.stdout, r.version)
		return models.ExitSuccess, nil
	}
	if cmdErr != nil && cmdErr.Code != models.ExitPatternNotFound {
		r.printDiagnostics(cmdErr)
		return cmdErr.Code, nil
	}

	records, err := buildRecords(files, opts.Long)
	if err != nil {
		return models.ExitUnexpected, err
	}

	if cmdErr != nil {
		// unmatched patterns: diagnostics first, listing still proceeds
		r.printDiagnostics(cmdErr)
	}

	if opts.JSON {
		if err := r.writeJSON(records); err != nil {
			return models.ExitUnexpected, err
		}
	} else {
		r.writeClassic(records, opts.Long)
	}

	if cmdErr != nil {
		return cmdErr.Code, nil
	}
	return models.ExitSuccess, nil
}

// buildRecords resolves each filename into an output record, statting
// entries one at a time in listing order when long format is on.
func buildRecords(files []string, long bool) ([]models.OutputRecord, error) {
	records := make([]models.OutputRecord, 0, len(files))
	for _, name := range files {
		record := models.OutputRecord{Name: name}
		if long {
			meta, err := fileutil.ResolveEntry(name)
			if err != nil {
				return nil, err
			}
			record.Type = meta.Type
			record.Size = FormatFileSize(meta.Size)
		}
		records = append(records, record)
	}
	return records, nil
}

// writeJSON prints the whole record list as a single JSON array.
func (r *Renderer) writeJSON(records []models.OutputRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode listing: %w", err)
	}
	fmt.Fprintln(r.stdout, string(data))
	return nil
}

// writeClassic prints one line per entry: "<type> <size> <name>" in
// long format, just the name otherwise.
func (r *Renderer) writeClassic(records []models.OutputRecord, long bool) {
	for _, record := range records {
		if long {
			fmt.Fprintf(r.stdout, "%s %s %s\n", record.Type, record.Size, record.Name)
		} else {
			fmt.Fprintln(r.stdout, record.Name)
		}
	}
}

// printDiagnostics writes the error's message lines to stderr. Fatal
// errors get a red leading line, unmatched-pattern lines are yellow.
func (r *Renderer) printDiagnostics(cmdErr *models.CommandError) {
	if !r.colorOutput {
		for _, msg := range cmdErr.Messages {
			fmt.Fprintln(r.stderr, msg)
		}
		return
	}

	if cmdErr.Code == models.ExitPatternNotFound {
		warn := color.New(color.FgYellow)
		for _, msg := range cmdErr.Messages {
			warn.Fprintln(r.stderr, msg)
		}
		return
	}

	fail := color.New(color.FgRed)
	for i, msg := range cmdErr.Messages {
		if i == 0 {
			fail.Fprintln(r.stderr, msg)
		} else {
			fmt.Fprintln(r.stderr, msg)
		}
	}
}
