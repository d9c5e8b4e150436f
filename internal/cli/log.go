// Package cli implements the dragbox command-line interface.
//
// This package provides commands for running the interactive drag board,
// replaying scripted pointer scenarios and exporting the resulting element
// tree. The CLI is built using cobra and logs via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - demo: Interactive board in the terminal (mouse drag to reorder)
//   - replay: Run a scenario headlessly and verify its expectations
//   - export: Write a replayed board as DOT, SVG, PDF, PNG, JSON or text
//   - config: Show the effective configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. The demo owns the terminal, so it logs to a
// file instead (--log-file).
//
// # Example
//
//	import "github.com/matzehuels/dragbox/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// timeFormat prints wall-clock time with centiseconds, e.g. "14:32:01.45".
const timeFormat = "15:04:05.00"

// newLogger returns the terminal logger used by every command.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Level:           level,
	})
}

// newFileLogger appends logfmt records to path, creating its directory. The
// demo uses it because the board owns the terminal while it runs.
func newFileLogger(path string, level log.Level) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Formatter:       log.LogfmtFormatter,
		Prefix:          appName,
	})
	return logger, f, nil
}

// progress times one replay or export and logs its outcome with the elapsed
// duration.
type progress struct {
	logger *log.Logger
	what   string
	start  time.Time
}

// newProgress starts timing an operation described by what, e.g. "replayed".
func newProgress(l *log.Logger, what string) *progress {
	return &progress{logger: l, what: what, start: time.Now()}
}

// done logs the operation at info level with keyvals and a "took" field.
// Example output: "14:32:01.45 INFO replayed scenario=swap steps=3 took=2ms"
func (p *progress) done(keyvals ...any) {
	keyvals = append(keyvals, "took", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(p.what, keyvals...)
}

type loggerKey struct{}

// withLogger attaches l to ctx. The root command does this before any
// subcommand runs.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
