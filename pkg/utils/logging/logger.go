package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/secmon-lab/ghorg/pkg/domain/types"
)

// Defaults of the ghorg CLI. Logs go to stderr so stdout carries only command output.
const (
	DefaultFormat = "text"
	DefaultLevel  = "info"
	DefaultOutput = "stderr"
)

var (
	mu            sync.Mutex
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	logFile       *os.File
)

func init() {
	_ = Configure(DefaultFormat, DefaultLevel, DefaultOutput)
}

// Default returns the default logger
func Default() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return defaultLogger
}

// Configure replaces the default logger. A log file opened by a previous call
// is closed once the new logger is in place.
func Configure(logFormat, logLevel, logOutput string) error {
	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}

	w, fd, err := openOutput(logOutput)
	if err != nil {
		return err
	}

	handler, err := newHandler(logFormat, level, w)
	if err != nil {
		if fd != nil {
			_ = fd.Close()
		}
		return err
	}

	mu.Lock()
	prev := logFile
	defaultLogger, logFile = slog.New(handler), fd
	mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, goerr.Wrap(types.ErrInvalidOption, "invalid log level, should be one of debug, info, warn, error",
		goerr.V("value", s))
}

// openOutput returns the writer for output, and the file behind it when
// output is a path.
func openOutput(output string) (io.Writer, *os.File, error) {
	switch output {
	case "stderr", "":
		return os.Stderr, nil, nil
	case "stdout", "-":
		return os.Stdout, nil, nil
	}

	fd, err := os.OpenFile(filepath.Clean(output), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", output))
	}
	return fd, fd, nil
}

// newFilter redacts tokens from every record, typed or not.
func newFilter() func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(
		masq.WithTag("secret"),
		masq.WithType[types.AuthToken](masq.MaskWithSymbol('*', 16)),
		masq.WithContain("ghp_"),
		masq.WithContain("gho_"),
		masq.WithContain("github_pat_"),
	)
}

func newHandler(format string, level slog.Level, w io.Writer) (slog.Handler, error) {
	filter := newFilter()

	switch format {
	case "text", "":
		return clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithSource(level <= slog.LevelDebug),
			clog.WithColorMap(&clog.ColorMap{
				Level: map[slog.Level]*color.Color{
					slog.LevelDebug: color.New(color.FgGreen, color.Bold),
					slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
					slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
					slog.LevelError: color.New(color.FgRed, color.Bold),
				},
				LevelDefault: color.New(color.FgBlue, color.Bold),
				Time:         color.New(color.FgWhite),
				Message:      color.New(color.FgHiWhite),
				AttrKey:      color.New(color.FgHiCyan),
				AttrValue:    color.New(color.FgHiWhite),
			}),
			clog.WithAttrHook(clog.GoerrHook),
			clog.WithReplaceAttr(filter),
		), nil

	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   level <= slog.LevelDebug,
			Level:       level,
			ReplaceAttr: filter,
		}), nil
	}

	return nil, goerr.Wrap(types.ErrInvalidOption, "invalid log format, should be 'json' or 'text'", goerr.V("value", format))
}
