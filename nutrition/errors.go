package nutrition

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel codes carried by every *Error. Compare with errors.Is.
var (
	ErrMissingField              = constError("missing field")
	ErrInvalidValue              = constError("invalid value")
	ErrInvalidFormat             = constError("invalid format")
	ErrInvalidInput              = constError("invalid input")
	ErrNegativeValue             = constError("negative value")
	ErrUnsupportedConversion     = constError("unsupported conversion")
	ErrInvalidShape              = constError("invalid shape")
	ErrUnsupportedUnitSystem     = constError("unsupported unit system")
	ErrInvalidBMR                = constError("invalid bmr")
	ErrMissingActivityLevel      = constError("missing activity level")
	ErrUnrecognizedActivityLevel = constError("unrecognized activity level")
	ErrInvalidTDEE               = constError("invalid tdee")
)

// ErrorKind is the closed set of failure categories the engine raises.
type ErrorKind int

const (
	// KindMissingField: a required key is absent from the input.
	KindMissingField ErrorKind = iota + 1
	// KindInvalidValue: a field is present but outside its legal domain.
	KindInvalidValue
	// KindFormat: a field's shape is wrong independent of its values.
	KindFormat
	// KindConversion: a unit pair or unit system is not supported.
	KindConversion
	// KindDownstream: a calculator received an out-of-contract argument directly.
	KindDownstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingField:
		return "missing_field"
	case KindInvalidValue:
		return "invalid_value"
	case KindFormat:
		return "format"
	case KindConversion:
		return "conversion"
	case KindDownstream:
		return "downstream"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by the engine. Message is the
// caller-facing text and is stable; callers branch on Kind or Code.
type Error struct {
	Kind    ErrorKind
	Field   string
	Code    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Code }

/* ─── Message templates ──────────────────────────────────────────────── */

func missingFieldError(field string) *Error {
	return &Error{
		Kind:    KindMissingField,
		Field:   field,
		Code:    ErrMissingField,
		Message: fmt.Sprintf("Missing required field: %s", field),
	}
}

func invalidValueError(field, detail string) *Error {
	return &Error{
		Kind:    KindInvalidValue,
		Field:   field,
		Code:    ErrInvalidValue,
		Message: fmt.Sprintf("Invalid %s: %s", field, detail),
	}
}

func formatError(field, detail string) *Error {
	return &Error{
		Kind:    KindFormat,
		Field:   field,
		Code:    ErrInvalidFormat,
		Message: fmt.Sprintf("Invalid %s format: %s", field, detail),
	}
}

func invalidInputError(field string) *Error {
	return &Error{
		Kind:    KindInvalidValue,
		Field:   field,
		Code:    ErrInvalidInput,
		Message: fmt.Sprintf("Invalid input: %s must be a finite number", field),
	}
}

func negativeValueError(field string) *Error {
	return &Error{
		Kind:    KindInvalidValue,
		Field:   field,
		Code:    ErrNegativeValue,
		Message: fmt.Sprintf("Negative value: %s cannot be negative", field),
	}
}

func unsupportedConversionError(from, to string) *Error {
	return &Error{
		Kind:    KindConversion,
		Field:   "units",
		Code:    ErrUnsupportedConversion,
		Message: fmt.Sprintf("Unsupported conversion: %s to %s", from, to),
	}
}

func invalidShapeError() *Error {
	return &Error{
		Kind:    KindFormat,
		Field:   "height",
		Code:    ErrInvalidShape,
		Message: "Invalid height shape: imperial height must be an object with feet and inches",
	}
}

func unsupportedUnitSystemError(system string) *Error {
	return &Error{
		Kind:    KindConversion,
		Field:   "units",
		Code:    ErrUnsupportedUnitSystem,
		Message: fmt.Sprintf("Unsupported unit system: %s", system),
	}
}
