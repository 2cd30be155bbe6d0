// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering and controlling log output.
//              Names, short tags and console colors come from one table.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-19 v0.2.0: Audit level removed, level metadata table, warn default

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

type levelInfo struct {
	name    string
	short   string
	color   string
	aliases []string
}

var levels = [...]levelInfo{
	LevelTrace: {"trace", "TRC", "\033[37m", []string{"trc"}},
	LevelDebug: {"debug", "DBG", "\033[36m", []string{"dbg"}},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", "\033[31m", []string{"err"}},
	LevelFatal: {"fatal", "FTL", "\033[35m", []string{"ftl"}},
}

const colorReset = "\033[0m"

func (l Level) info() (levelInfo, bool) {
	if l < LevelTrace || l > LevelFatal {
		return levelInfo{}, false
	}
	return levels[l], true
}

// String returns the lower-case level name used in config files and JSON
func (l Level) String() string {
	if info, ok := l.info(); ok {
		return info.name
	}
	return "unknown"
}

// ShortString returns the three-letter tag printed by the text formatter
func (l Level) ShortString() string {
	if info, ok := l.info(); ok {
		return info.short
	}
	return "???"
}

// Color returns the ANSI color code for console output
func (l Level) Color() string {
	if info, ok := l.info(); ok {
		return info.color
	}
	return colorReset
}

// ShouldLog reports whether a message at l passes the minimum level.
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts a level name, its short tag or a common alias,
// case-insensitively.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for l, info := range levels {
		if s == info.name {
			return Level(l), nil
		}
		for _, alias := range info.aliases {
			if s == alias {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports an unknown level or format name.
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel is warn: a CLI run stays quiet unless asked.
func DefaultLevel() Level {
	return LevelWarn
}
