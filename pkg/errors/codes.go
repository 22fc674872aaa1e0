package errors

import "strings"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal   ErrorCode = "COMMON_001"
	ErrCodeValidation ErrorCode = "COMMON_002"
	ErrCodeNotFound   ErrorCode = "COMMON_003"

	CodeOK      = ErrorCode("OK")
	CodeUnknown = ErrorCode("UNKNOWN")
)

// Configuration Error Codes
const (
	// ErrCodeConfigInvalid covers any configuration rejected at engine
	// construction: negative distance bounds, alignment thresholds outside
	// [0,1], unrecognized log levels.  Construction fails immediately;
	// values are never clamped.
	ErrCodeConfigInvalid  ErrorCode = "CFG_001"
	ErrCodeConfigReadFail ErrorCode = "CFG_002"
)

// Residue / Registry Error Codes
const (
	// ErrCodeResidueNotFound is returned by pair queries that reference a
	// residue id that was never registered.
	ErrCodeResidueNotFound ErrorCode = "RES_001"
	// ErrCodeResidueInvalid is returned by the Residue factory for
	// structurally invalid input (empty id, no atoms).
	ErrCodeResidueInvalid ErrorCode = "RES_002"
)

// Geometry Error Codes
const (
	// ErrCodeGeometryDegenerate identifies neighbor geometry too sparse to
	// classify.  Capacity classification recovers locally with a
	// zero-capacity fallback and never raises this across the Provider
	// boundary; the code exists so diagnostics and logs can label the
	// condition uniformly.
	ErrCodeGeometryDegenerate ErrorCode = "GEO_001"
)

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:   "internal error",
	ErrCodeValidation: "validation failed",
	ErrCodeNotFound:   "resource not found",

	ErrCodeConfigInvalid:  "invalid engine configuration",
	ErrCodeConfigReadFail: "failed to read configuration",

	ErrCodeResidueNotFound: "residue not registered",
	ErrCodeResidueInvalid:  "invalid residue",

	ErrCodeGeometryDegenerate: "neighbor geometry too sparse to classify",
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
