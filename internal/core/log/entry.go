// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry and the typed Fields constructors used
//              to attach structured key/value data to a log line.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-19 v0.2.0: Entry reduced to run-level context, typed field helpers

package log

import (
	"time"
)

// Entry is one log line before formatting.
type Entry struct {
	Timestamp     time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string
	Fields        Fields
	Error         error
}

// Fields holds structured key/value data for one entry
type Fields map[string]interface{}

// Float64 returns a single float field, e.g. a component value.
func Float64(key string, value float64) Fields { return Fields{key: value} }

// String returns a single string field.
func String(key, value string) Fields { return Fields{key: value} }

// Int returns a single integer field.
func Int(key string, value int) Fields { return Fields{key: value} }

// NewEntry stamps a new entry with the current time.
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    Fields{},
	}
}

// addFields copies every set into the entry, later sets overriding earlier ones.
func (e *Entry) addFields(sets ...Fields) {
	for _, set := range sets {
		for k, v := range set {
			e.Fields[k] = v
		}
	}
}
