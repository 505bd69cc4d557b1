package mdlib

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	cfg, err := iso191151.Loads(data)
//	if errors.Is(err, mdlib.ErrInvalidConfig) {
//	    // Handle a configuration that does not match its schema
//	}
var (
	// ErrInvalidConfig indicates a configuration does not conform to its JSON Schema.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidRecord indicates an XML record does not conform to its XSD.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrInvalidDate indicates a date or datetime value could not be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrCitationRoles indicates a citation was given a contact with other than one role.
	ErrCitationRoles = errors.New("citation contacts must have exactly one role")

	// ErrUnresolvedCitation indicates a DOI based citation was encoded before being resolved.
	ErrUnresolvedCitation = errors.New("required citation DOI not resolved")

	// ErrCitationLookup indicates the DOI citation service could not produce a citation.
	ErrCitationLookup = errors.New("citation lookup failed")

	// ErrUnknownStandard indicates a standard identifier is not registered.
	ErrUnknownStandard = errors.New("unknown standard")

	// ErrUnknownConfig indicates a named configuration does not exist.
	ErrUnknownConfig = errors.New("unknown configuration")

	// ErrUnsupportedVersion indicates a configuration version has no converter.
	ErrUnsupportedVersion = errors.New("unsupported configuration version")

	// ErrInvalidContainer indicates an RTZP archive is malformed.
	ErrInvalidContainer = errors.New("invalid RTZP container")

	// ErrNoValidator indicates record validation was requested without an XSD validator.
	ErrNoValidator = errors.New("no XSD validator configured")
)

// ConfigValidationError reports a configuration rejected by its JSON Schema.
// Message carries the schema library's diagnostic unmodified.
type ConfigValidationError struct {
	Schema  string // Schema identifier the instance was validated against
	Message string // Diagnostic from the schema validator
}

func (e *ConfigValidationError) Error() string {
	return fmt.Sprintf("configuration not valid against %s: %s", e.Schema, e.Message)
}

// Unwrap allows errors.Is(err, ErrInvalidConfig).
func (e *ConfigValidationError) Unwrap() error { return ErrInvalidConfig }

// RecordValidationError reports an XML record rejected by its XSD.
type RecordValidationError struct {
	Standard string // Standard identifier, e.g. "iso-19115-1"
	Output   string // Diagnostic text from the XSD validator
}

func (e *RecordValidationError) Error() string {
	msg := fmt.Sprintf("record not valid against %s schema", e.Standard)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ":\n" + out
	}
	return msg
}

// Unwrap allows errors.Is(err, ErrInvalidRecord).
func (e *RecordValidationError) Unwrap() error { return ErrInvalidRecord }

// DecodeError reports present but malformed data found while decoding a record.
// Message is fixed per field, e.g. "Datestamp could not be parsed as an ISO date value".
type DecodeError struct {
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnsupportedVersion):
		return ExitConfigError
	case errors.Is(err, ErrInvalidRecord), errors.Is(err, ErrInvalidContainer):
		return ExitRecordError
	case errors.Is(err, ErrCitationLookup), errors.Is(err, ErrUnresolvedCitation):
		return ExitCitationError
	case errors.Is(err, ErrUnknownStandard), errors.Is(err, ErrUnknownConfig):
		return ExitUnknownError
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range usagePatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}
