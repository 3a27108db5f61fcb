package main

import (
	"errors"
	"io"
	"os"

	"github.com/harrison/myls/internal/cmd"
	"github.com/harrison/myls/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command against args and returns the process
// exit code. Command errors (codes 2-5) arrive as ExitError with their
// diagnostics already printed; anything else is unexpected, logged, and
// mapped to the generic failure code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := cmd.NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		log := logger.NewConsoleLogger(stderr, "error")
		log.Errorf("my-ls: unexpected error: %v", err)
		return 1
	}
	return 0
}
