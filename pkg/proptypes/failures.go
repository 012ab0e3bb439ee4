package proptypes

import "fmt"

func missingRequired(propName, componentName, location string) error {
	msg := fmt.Sprintf("Required %s `%s` was not specified in `%s`.",
		location, propName, componentName)
	return &Failure{
		Code:           CodeMissingRequired,
		Message:        msg,
		TranslationKey: "proptypes.required",
		TranslationValues: map[string]any{
			"location":  location,
			"prop":      propName,
			"component": componentName,
		},
	}
}

// wrongType is the failure of the kind and primitive checkers.
func wrongType(propName, componentName, location, actual, expected string) error {
	msg := fmt.Sprintf("Invalid %s `%s` of type `%s` supplied to `%s`, expected `%s`.",
		location, propName, actual, componentName, expected)
	return &Failure{
		Code:           CodeWrongKind,
		Message:        msg,
		TranslationKey: "proptypes.invalid_type",
		TranslationValues: map[string]any{
			"location":  location,
			"prop":      propName,
			"component": componentName,
			"type":      actual,
			"expected":  expected,
		},
	}
}

// wrongCollection is the failure of the element and structural checkers.
func wrongCollection(propName, componentName, location, actual, label string) error {
	msg := fmt.Sprintf("Invalid %s `%s` of type `%s` supplied to `%s`, expected an Immutable.js %s.",
		location, propName, actual, componentName, label)
	return &Failure{
		Code:           CodeWrongKind,
		Message:        msg,
		TranslationKey: "proptypes.invalid_collection",
		TranslationValues: map[string]any{
			"location":  location,
			"prop":      propName,
			"component": componentName,
			"type":      actual,
			"expected":  label,
		},
	}
}

func wrongInstance(propName, componentName, location, actual, expected string) error {
	msg := fmt.Sprintf("Invalid %s `%s` of type `%s` supplied to `%s`, expected instance of `%s`.",
		location, propName, actual, componentName, expected)
	return &Failure{
		Code:           CodeWrongKind,
		Message:        msg,
		TranslationKey: "proptypes.invalid_instance",
		TranslationValues: map[string]any{
			"location":  location,
			"prop":      propName,
			"component": componentName,
			"type":      actual,
			"expected":  expected,
		},
	}
}

func wrongValue(propName, componentName, location string, value any, expected string) error {
	msg := fmt.Sprintf("Invalid %s `%s` of value `%v` supplied to `%s`, expected one of %s.",
		location, propName, value, componentName, expected)
	return &Failure{
		Code:           CodeWrongValue,
		Message:        msg,
		TranslationKey: "proptypes.invalid_value",
		TranslationValues: map[string]any{
			"location":  location,
			"prop":      propName,
			"component": componentName,
			"value":     value,
			"expected":  expected,
		},
	}
}

func badConfiguration(propName, componentName string) error {
	msg := fmt.Sprintf("Invalid typeChecker supplied to `%s` for propType `%s`, expected a function.",
		componentName, propName)
	return &Failure{
		Code:           CodeBadConfiguration,
		Message:        msg,
		TranslationKey: "proptypes.invalid_checker",
		TranslationValues: map[string]any{
			"prop":      propName,
			"component": componentName,
		},
	}
}

func recordMismatch(propName, componentName, location string) error {
	msg := fmt.Sprintf("Invalid %s `%s` supplied to `%s`, expected Immutable.js Record of different type.",
		location, propName, componentName)
	return &Failure{
		Code:           CodeRecordMismatch,
		Message:        msg,
		TranslationKey: "proptypes.record_mismatch",
		TranslationValues: map[string]any{
			"location":  location,
			"prop":      propName,
			"component": componentName,
		},
	}
}

func tooDeep(propName, componentName, location string) error {
	msg := fmt.Sprintf("Invalid %s `%s` supplied to `%s`, exceeds maximum nesting depth of %d.",
		location, propName, componentName, MaxDepth)
	return &Failure{
		Code:           CodeTooDeep,
		Message:        msg,
		TranslationKey: "proptypes.too_deep",
		TranslationValues: map[string]any{
			"location":  location,
			"prop":      propName,
			"component": componentName,
			"max":       MaxDepth,
		},
	}
}
