package proptypes

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is one failing prop reported by CheckPropTypes.
type ValidationError struct {
	Prop              string
	Component         string
	Location          string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	Err               error
}

func (e ValidationError) Error() string {
	return e.Message
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects every failing prop of a single check.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "prop type check failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Message)
	}
	return "prop type check failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the underlying failures to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, err := range ve {
		errs = append(errs, err)
	}
	return errs
}

func (ve ValidationErrors) Has(prop string) bool {
	for _, err := range ve {
		if err.Prop == prop {
			return true
		}
	}
	return false
}

// Get returns the message reported for prop, or "" when it passed.
func (ve ValidationErrors) Get(prop string) string {
	for _, err := range ve {
		if err.Prop == prop {
			return err.Message
		}
	}
	return ""
}

func (ve ValidationErrors) Props() []string {
	props := make([]string, 0, len(ve))
	for _, err := range ve {
		props = append(props, err.Prop)
	}
	return props
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// CheckPropTypes runs every field validator against props in order and returns the
// failures as ValidationErrors, or nil when all props are valid.
// Specs with a nil validator are skipped.
func CheckPropTypes(specs Fields, props Props, location, componentName string) error {
	if componentName == "" {
		componentName = Anonymous
	}

	var errs ValidationErrors
	for _, spec := range specs {
		if isNilValidator(spec.Validator) {
			continue
		}
		if err := spec.Validator.Validate(props, spec.Name, componentName, location); err != nil {
			errs = append(errs, newValidationError(spec.Name, componentName, location, err))
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func newValidationError(prop, component, location string, err error) ValidationError {
	ve := ValidationError{
		Prop:      prop,
		Component: component,
		Location:  location,
		Message:   err.Error(),
		Err:       err,
	}

	var f *Failure
	if errors.As(err, &f) {
		ve.TranslationKey = f.TranslationKey
		ve.TranslationValues = f.TranslationValues
		return ve
	}

	ve.TranslationKey = "proptypes.failed"
	ve.TranslationValues = map[string]any{
		"location":  location,
		"prop":      prop,
		"component": component,
		"error":     fmt.Sprint(err),
	}
	return ve
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
