package proptypes

import "errors"

// Sentinel errors matched by Failure.Is, one per failure code.
var (
	ErrMissingRequired  = errors.New("required prop was not specified")
	ErrWrongKind        = errors.New("prop has the wrong type")
	ErrWrongValue       = errors.New("prop has an unexpected value")
	ErrBadConfiguration = errors.New("invalid type checker configuration")
	ErrRecordMismatch   = errors.New("prop is a record of a different type")
	ErrTooDeep          = errors.New("prop exceeds maximum nesting depth")

	// ErrLoadConfig is returned when the reporter configuration cannot be loaded.
	ErrLoadConfig = errors.New("failed to load proptypes configuration")
)

// Code classifies a Failure.
type Code string

const (
	CodeMissingRequired  Code = "missing_required"
	CodeWrongKind        Code = "wrong_kind"
	CodeWrongValue       Code = "wrong_value"
	CodeBadConfiguration Code = "bad_configuration"
	CodeRecordMismatch   Code = "record_mismatch"
	CodeTooDeep          Code = "too_deep"
)

var codeErrors = map[Code]error{
	CodeMissingRequired:  ErrMissingRequired,
	CodeWrongKind:        ErrWrongKind,
	CodeWrongValue:       ErrWrongValue,
	CodeBadConfiguration: ErrBadConfiguration,
	CodeRecordMismatch:   ErrRecordMismatch,
	CodeTooDeep:          ErrTooDeep,
}

// Failure is the error returned by every validator in this package.
// Message is the exact human-readable text; the translation fields carry the
// same information for localized rendering.
type Failure struct {
	Code              Code
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (f *Failure) Error() string {
	return f.Message
}

// Is lets errors.Is match a Failure against the sentinel for its code.
func (f *Failure) Is(target error) bool {
	sentinel, ok := codeErrors[f.Code]
	return ok && sentinel == target
}
