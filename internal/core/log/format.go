// File: format.go
// Title: Log Format Definitions
// Description: Output formats for log messages: JSON for machines, text and
//              colored console output for people at a terminal.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-19 v0.2.0: Sorted fields and run id in text output, logfmt removed

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format selects the formatter a Logger writes with
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatConsole
)

var formatNames = [...]string{
	FormatJSON:    "json",
	FormatText:    "text",
	FormatConsole: "console",
}

func (f Format) String() string {
	if f < FormatJSON || f > FormatConsole {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat maps "json", "text" or "console" to a Format. Unknown names
// return FormatText together with a *ParseError.
func ParseFormat(format string) (Format, error) {
	s := strings.ToLower(strings.TrimSpace(format))
	for f, name := range formatNames {
		if s == name {
			return Format(f), nil
		}
	}
	return FormatText, &ParseError{Input: format, Type: "format"}
}

// Formatter turns an entry into one output line, newline included.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter writes one JSON object per line
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter uses RFC 3339 timestamps.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format encodes entry. Error-valued fields are written as their message and
// a structured error also contributes its JSON form under "error_details".
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := map[string]interface{}{
		"timestamp": entry.Timestamp.Format(f.TimestampFormat),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}
	setIf(data, "logger", entry.Logger)
	setIf(data, "correlation_id", entry.CorrelationID)

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				data["error_details"] = json.RawMessage(raw)
			}
		}
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func setIf(data map[string]interface{}, key, value string) {
	if value != "" {
		data[key] = value
	}
}

// TextFormatter writes entries as
//
//	15:04:05 [INF] {batch} (run=...) message [key=value ...] error="..."
//
// with fields sorted by key.
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter uses a clock-time timestamp.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	if !f.DisableTimestamp {
		b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "[%s] ", entry.Level.ShortString())
	if entry.Logger != "" {
		fmt.Fprintf(&b, "{%s} ", entry.Logger)
	}
	if entry.CorrelationID != "" {
		fmt.Fprintf(&b, "(run=%s) ", entry.CorrelationID)
	}
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString(" [")
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", k, entry.Fields[k])
		}
		b.WriteByte(']')
	}

	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// ConsoleFormatter is the text format wrapped in the level's ANSI color
type ConsoleFormatter struct {
	DisableColors bool

	*TextFormatter
}

func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TextFormatter: NewTextFormatter()}
}

func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	data, err := f.TextFormatter.Format(entry)
	if err != nil || f.DisableColors {
		return data, err
	}
	line := strings.TrimSuffix(string(data), "\n")
	return []byte(entry.Level.Color() + line + colorReset + "\n"), nil
}

func newFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewTextFormatter()
	}
}
