// Package cmd wires the my-ls pipeline behind a cobra command: parse
// arguments, enumerate the working directory, filter, render.
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/myls/internal/config"
	"github.com/harrison/myls/internal/display"
	"github.com/harrison/myls/internal/fileutil"
	"github.com/harrison/myls/internal/filter"
	"github.com/harrison/myls/internal/logger"
	"github.com/harrison/myls/internal/models"
	"github.com/harrison/myls/internal/parser"
)

// Version is injected at build time via -ldflags
var Version = "1.0.0"

// NewRootCommand creates and returns the root cobra command for my-ls.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "my-ls [OPTION]... [--] [PATTERN]...",
		Short: "List directory contents with pattern filtering",
		Long: `my-ls enumerates the entries of the current working directory,
optionally filters them by exact-name or regex patterns, and renders
them as classic one-entry-per-line output or as a JSON array.`,
		// The option grammar (short clusters, pattern mode, the exit
		// code taxonomy) belongs to internal/parser, so cobra must hand
		// over the raw argument list untouched.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	return cmd
}

// runList executes the whole pipeline and converts the renderer's exit
// code into an ExitError for main. A plain error return means an
// unexpected failure (filesystem, bad regex, bad config file) that main
// reports with the generic failure code.
func runList(args []string, stdout, stderr io.Writer) error {
	result := parser.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Apply(&result.Options)

	log := logger.NewConsoleLogger(stderr, logLevel(cfg))

	entries, err := fileutil.ListDirectory(".")
	if err != nil {
		return err
	}
	log.Debugf("read %d entries from working directory", len(entries))

	files := entries
	cmdErr := result.Err
	if !filter.Passthrough(result.Options, result.Patterns, result.Err) {
		filtered, err := filter.Apply(entries, result.Options, result.Patterns)
		if err != nil {
			return err
		}
		files = filtered.Files
		if filtered.Err != nil {
			cmdErr = filtered.Err
		}
		log.Debugf("kept %d of %d entries after filtering", len(files), len(entries))
	}

	renderer := display.NewRenderer(stdout, stderr, "my-ls "+Version)
	code, err := renderer.Render(files, result.Options, cmdErr)
	if err != nil {
		return err
	}
	if code != models.ExitSuccess {
		return &ExitError{Code: code}
	}
	return nil
}

// logLevel resolves the diagnostic log level: MYLS_LOG_LEVEL wins over
// the config file.
func logLevel(cfg *config.Config) string {
	if level := os.Getenv("MYLS_LOG_LEVEL"); level != "" {
		return level
	}
	return cfg.LogLevel
}
