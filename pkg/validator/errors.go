package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidRule is returned when a rule is registered without a name or check function.
	ErrInvalidRule = errors.New("rule must have a non-empty name and a non-nil check")

	// ErrRuleExists is returned when a rule name is registered twice.
	ErrRuleExists = errors.New("rule already registered")

	// ErrInvalidPattern is returned when a pattern parameter is not a valid regular expression.
	ErrInvalidPattern = errors.New("invalid pattern")
)
