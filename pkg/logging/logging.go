// Package logging configures bundlr's zerolog setup: a console writer on
// stderr plus an append-only log file under the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileEnv overrides the log file location. "-" disables the file.
const LogFileEnv = "BUNDLR_LOG_FILE"

var (
	mu      sync.Mutex
	logFile *os.File
)

// Options controls SetupLoggerWithOptions
type Options struct {
	Verbosity int

	// Console receives human readable output; nil means stderr
	Console io.Writer

	// LogFile is the JSON log path; empty uses LogFilePath(), "-" disables it
	LogFile string
}

// LevelFor maps a -v count to a level: warn, info, debug, then trace
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger configures the global logger for a CLI invocation
func SetupLogger(verbosity int) {
	SetupLoggerWithOptions(Options{Verbosity: verbosity})
}

// SetupLoggerWithOptions configures the global logger. Calling it again
// closes the log file opened by the previous call.
func SetupLoggerWithOptions(opts Options) {
	mu.Lock()
	defer mu.Unlock()

	zerolog.SetGlobalLevel(LevelFor(opts.Verbosity))

	console := opts.Console
	noColor := true
	if console == nil {
		console = os.Stderr
		noColor = !isatty.IsTerminal(os.Stderr.Fd())
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}}

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	path := opts.LogFile
	if path == "" {
		path = LogFilePath()
	}
	var fileErr error
	if path != "-" {
		logFile, fileErr = openLogFile(path)
		if fileErr == nil {
			writers = append(writers, logFile)
		}
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Failed to create log file, logging to console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", path).Msg("Logger initialized")
}

// GetLogger returns a logger tagged with the component name
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogFilePath returns where the log file is written: $BUNDLR_LOG_FILE, or
// bundlr/bundlr.log under the XDG state home
func LogFilePath() string {
	if p := os.Getenv(LogFileEnv); p != "" {
		return p
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	if stateHome == "" {
		return "bundlr.log"
	}
	return filepath.Join(stateHome, "bundlr", "bundlr.log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// LogOperationStart logs the start of an operation and returns a function
// that logs its completion with the elapsed time
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
