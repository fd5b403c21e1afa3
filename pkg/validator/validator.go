package validator

import (
	"context"
	"log/slog"

	"github.com/eduplatform/brforms/pkg/logger"
)

// Validator applies rule sets using a Registry. The zero value is not usable;
// create instances with New.
type Validator struct {
	registry *Registry
	logger   *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithRegistry replaces the default registry. Nil is ignored.
func WithRegistry(r *Registry) Option {
	return func(v *Validator) {
		if r != nil {
			v.registry = r
		}
	}
}

// WithLogger sets the logger that receives unknown-rule warnings. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a Validator backed by the default registry. Without WithLogger,
// warnings go to slog.Default() as it is at the time of logging.
func New(opts ...Option) *Validator {
	v := &Validator{registry: defaultRegistry}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Registry returns the registry the validator resolves rule names against.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// ValidateField applies rules to value in order and returns the first failure,
// or nil when every rule passes. Unknown rule names are logged and skipped.
func (v *Validator) ValidateField(value any, rules Rules, field string) *ValidationError {
	for _, rule := range rules {
		if rule.Name == RuleCustom {
			if err := v.applyCustom(value, rule, field); err != nil {
				return err
			}
			continue
		}

		check, ok := v.registry.Lookup(rule.Name)
		if !ok {
			v.warnUnknown(rule.Name, logger.Field(field))
			continue
		}

		if !check(value, rule.Param) {
			return v.newError(field, value, rule, v.registry.Message(rule.Name, rule.Param))
		}
	}
	return nil
}

// ValidateObject validates every field of schema against data. A missing key
// is validated as nil. Errors are returned in schema order; all fields are
// checked even after a failure.
//
// The result is a concrete ValidationErrors: check it with IsEmpty, since even
// an empty result is a non-nil error once stored in an error variable. Callers
// that need an error should use Schema.Validate, which returns nil when valid.
func (v *Validator) ValidateObject(data map[string]any, schema Schema) ValidationErrors {
	var errs ValidationErrors
	for _, f := range schema {
		if err := v.ValidateField(data[f.Name], f.Rules, f.Name); err != nil {
			errs.Add(*err)
		}
	}
	return errs
}

func (v *Validator) applyCustom(value any, rule Rule, field string) *ValidationError {
	fn, ok := rule.Param.(CustomFunc)
	if !ok {
		if raw, isFunc := rule.Param.(func(any) (bool, string)); isFunc {
			fn = raw
		}
	}
	if fn == nil {
		v.warnUnknown(RuleCustom, logger.Field(field))
		return nil
	}

	valid, message := fn(value)
	if message != "" {
		return v.newError(field, value, rule, message)
	}
	if !valid {
		return v.newError(field, value, rule, v.registry.Message(RuleCustom, nil))
	}
	return nil
}

func (v *Validator) newError(field string, value any, rule Rule, message string) *ValidationError {
	values := map[string]any{"field": field}
	if rule.Param != nil && rule.Name != RuleCustom {
		values["param"] = rule.Param
	}
	return &ValidationError{
		Field:             field,
		Message:           message,
		Value:             value,
		TranslationKey:    "validation." + rule.Name,
		TranslationValues: values,
	}
}

func (v *Validator) warnUnknown(name string, attrs ...slog.Attr) {
	l := v.logger
	if l == nil {
		l = slog.Default()
	}
	attrs = append(attrs, logger.Rule(name), logger.Component("validator"))
	l.LogAttrs(context.Background(), slog.LevelWarn, "unknown validation rule", attrs...)
}

var defaultValidator = New()

// ValidateField validates value with the default validator.
func ValidateField(value any, rules Rules, field string) *ValidationError {
	return defaultValidator.ValidateField(value, rules, field)
}

// ValidateObject validates data with the default validator.
func ValidateObject(data map[string]any, schema Schema) ValidationErrors {
	return defaultValidator.ValidateObject(data, schema)
}
