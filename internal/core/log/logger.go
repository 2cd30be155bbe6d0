// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: leveled, structured logging with
//              persistent context fields and integration with the structured
//              error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Synchronous only, stderr default, correlation ids per run

package log

import (
	"io"
	"os"
	"sync"

	rlcerror "github.com/msto63/nearestrlc/internal/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	contextFields Fields
	correlationID string

	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger writing text to stderr at the default level
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewTextFormatter(),
		output:        os.Stderr,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		formatter:     newFormatter(config.Format),
		output:        config.Output,
		name:          config.Name,
		contextFields: make(Fields),
	}

	if config.Output == nil {
		logger.output = os.Stderr
	}

	return logger
}

// WithName returns a copy of the logger reporting under name, usually the
// running subcommand.
func (l *Logger) WithName(name string) *Logger {
	return l.derive(func(c *Logger) { c.name = name })
}

// WithField returns a copy of the logger that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.derive(func(c *Logger) { c.contextFields[key] = value })
}

// WithCorrelationID returns a copy of the logger that tags every entry with
// id, e.g. the run id of one batch.
func (l *Logger) WithCorrelationID(id string) *Logger {
	return l.derive(func(c *Logger) { c.correlationID = id })
}

func (l *Logger) derive(apply func(*Logger)) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	c := l.clone()
	apply(c)
	return c
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// LogError logs err at the level matching its severity: low is info,
// medium is warn, anything else is error. A structured error also adds its
// code, operation and details as error_* fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	rlcErr, ok := err.(*rlcerror.Error)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     string(rlcErr.Code()),
		"error_severity": rlcErr.Severity().String(),
	}
	if op := rlcErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range rlcErr.Details() {
		fields["error_"+k] = v
	}

	l.log(severityLevel(rlcErr.Severity()), rlcErr.Message(), err, fields)
}

func severityLevel(s rlcerror.Severity) Level {
	switch s {
	case rlcerror.SeverityLow:
		return LevelInfo
	case rlcerror.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.level
}

// SetLevel sets the log level
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.level = level
}

// log formats one entry and writes it while holding the write lock, so
// lines from concurrent callers never interleave.
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err

	entry.addFields(l.contextFields)
	entry.addFields(fields...)

	if formatted, formatErr := l.formatter.Format(entry); formatErr == nil {
		_, _ = l.output.Write(formatted)
	}
}

// clone creates a copy of the logger; callers hold the read lock
func (l *Logger) clone() *Logger {
	clone := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		correlationID: l.correlationID,
		contextFields: make(Fields, len(l.contextFields)),
	}

	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}

	return clone
}
