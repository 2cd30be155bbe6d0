// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the quantizer, the engineering
//              notation parser, the configuration loader and the CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Reduced to the codes used by nearestrlc, added
//                       tolerance and series codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Quantization
	CodeInvalidTolerance Code = "INVALID_TOLERANCE"
	CodeInvalidSeries    Code = "INVALID_SERIES"

	// Parsing and validation
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidTolerance, CodeInvalidSeries,
		CodeInvalidFormat, CodeValueOutOfRange,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidTolerance, CodeInvalidSeries:
		return "quantization"
	case CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidInput:
		return "validation"
	case CodeConfigError, CodeInvalidConfig, CodeNotFound:
		return "configuration"
	default:
		return "generic"
	}
}
