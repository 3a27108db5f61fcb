// Package logger provides the leveled console logger used for my-ls
// diagnostics. Traces are only visible when the level is lowered to
// debug, so normal listing output stays untouched.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelDebug int = 0
	levelInfo  int = 1
	levelWarn  int = 2
	levelError int = 3
)

// ConsoleLogger logs diagnostics to a writer with timestamps and
// thread safety. All output is prefixed with [HH:MM:SS] timestamps.
// Color output is automatically enabled for terminal output.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    int
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided
// io.Writer. If writer is nil, messages are silently discarded.
// Valid levels: debug, info, warn, error (case-insensitive); empty or
// invalid levels default to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    parseLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal reports whether the writer is a TTY that supports colors.
func isTerminal(w io.Writer) bool {
	switch w {
	case os.Stdout:
		return isatty.IsTerminal(os.Stdout.Fd())
	case os.Stderr:
		return isatty.IsTerminal(os.Stderr.Fd())
	}
	return false
}

// parseLevel converts a level name to its numeric value, defaulting to
// info for empty or unknown names.
func parseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// Debugf logs a debug-level message.
func (cl *ConsoleLogger) Debugf(format string, args ...any) {
	cl.log(levelDebug, nil, format, args...)
}

// Infof logs an info-level message.
func (cl *ConsoleLogger) Infof(format string, args ...any) {
	cl.log(levelInfo, nil, format, args...)
}

// Warnf logs a warn-level message in yellow when color is enabled.
func (cl *ConsoleLogger) Warnf(format string, args ...any) {
	cl.log(levelWarn, color.New(color.FgYellow), format, args...)
}

// Errorf logs an error-level message in red when color is enabled.
func (cl *ConsoleLogger) Errorf(format string, args ...any) {
	cl.log(levelError, color.New(color.FgRed), format, args...)
}

func (cl *ConsoleLogger) log(level int, c *color.Color, format string, args ...any) {
	if cl.writer == nil || level < cl.logLevel {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	line := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
	if cl.colorOutput && c != nil {
		c.Fprintln(cl.writer, line)
		return
	}
	fmt.Fprintln(cl.writer, line)
}
