// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities
//              onto log levels when an error is reported.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity table per code, alerting removed

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is bad user input: an unknown tolerance, a malformed value.
	SeverityLow Severity = iota
	// SeverityMedium is a broken setup such as an invalid config file.
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

func (s Severity) String() string {
	if s < SeverityLow || s > SeverityCritical {
		return "unknown"
	}
	return severityNames[s]
}

var codeSeverity = map[Code]Severity{
	CodeInternal:         SeverityHigh,
	CodeConfigError:      SeverityMedium,
	CodeInvalidConfig:    SeverityMedium,
	CodeInvalidSeries:    SeverityMedium,
	CodeInvalidInput:     SeverityLow,
	CodeNotFound:         SeverityLow,
	CodeInvalidTolerance: SeverityLow,
	CodeInvalidFormat:    SeverityLow,
	CodeValueOutOfRange:  SeverityLow,
}

// GetSeverityFromCode returns the default severity for code; unlisted codes
// are medium.
func GetSeverityFromCode(code Code) Severity {
	if s, ok := codeSeverity[code]; ok {
		return s
	}
	return SeverityMedium
}
