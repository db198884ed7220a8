// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var defaultLogger *slog.Logger

// getLogFilePath determines the path for the application log file under the XDG state directory.
func getLogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	logDir := filepath.Join(stateDir, "opentag")
	logFile := filepath.Join(logDir, "app.log")
	return logFile, nil
}

// ParseLevel maps a config value to a slog level. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openLogFile opens the log file for appending, creating its directory.
func openLogFile() (io.Writer, error) {
	logFilePath, err := getLogFilePath()
	if err != nil {
		return nil, err
	}
	logDir := filepath.Dir(logFilePath)
	// 0750: user rwx, group rx, others ---
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", logDir, err)
	}
	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", logFilePath, err)
	}
	// The file is closed by the OS on exit.
	return file, nil
}

// InitLogger configures the default logger. Logs always go to the state
// file; verbose additionally mirrors them to stderr. It should be called once
// at startup.
func InitLogger(verbose bool, level string) {
	var writers []io.Writer

	file, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v. File logging disabled.\n", err)
	} else {
		writers = append(writers, file)
	}
	if verbose {
		writers = append(writers, os.Stderr)
	}

	var finalWriter io.Writer
	switch len(writers) {
	case 0:
		finalWriter = io.Discard
	case 1:
		finalWriter = writers[0]
	default:
		finalWriter = io.MultiWriter(writers...)
	}

	lvl := ParseLevel(level)
	if verbose && lvl > slog.LevelDebug {
		lvl = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(finalWriter, &slog.HandlerOptions{Level: lvl})
	defaultLogger = slog.New(handler)
}

// SetLogger allows replacing the default logger instance, mostly for tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// checkLogger ensures the logger is initialized before use, preventing nil panics.
func checkLogger() {
	if defaultLogger == nil {
		defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...interface{}) {
	checkLogger()
	defaultLogger.Error(fmt.Sprintf(format, v...))
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}
