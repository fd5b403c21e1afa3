// Package validator implements the rule engine used to validate flat
// user-submitted records: school, municipality, staff and student forms.
//
// A field is described by an ordered Rules slice. Each Rule names a check from
// the Registry (required, email, cpf, cnpj, telefone, cep, minLength, ...) and
// may carry a parameter. Rules are evaluated in slice order and evaluation of a
// field stops at the first failing rule, so every field yields at most one
// ValidationError per pass. Messages are fixed Portuguese templates.
//
// # Architecture
//
// Each source file groups a family of checks (`string_rules.go`,
// `numeric_rules.go`, `document_rules.go`, `date_rules.go`, ...). The Registry
// maps rule names to check functions and message templates; it is populated
// once with the built-in rules and may be extended with Register before use.
// A Validator couples a Registry with a *slog.Logger used to report unknown
// rule names, which are skipped rather than treated as failures.
//
// Core building blocks:
//   - Rule / Rules: ordered rule set for a single field
//   - Field / Schema: ordered field-to-rules map for a whole record
//   - ValidationError: one failure with field, message and offending value
//   - ValidationErrors: slice type implementing the error interface
//   - ParseRules: declarative "required|minLength:5" rule strings
//
// # Usage
//
//	schema := validator.Schema{
//	    validator.NewField("nome", validator.Required()),
//	    validator.NewField("email", validator.Required(), validator.Email()),
//	    validator.NewField("cpf", validator.Required(), validator.CPF()),
//	}
//
//	errs := validator.ValidateObject(map[string]any{
//	    "nome":  "Maria",
//	    "email": "maria@escola.com",
//	    "cpf":   "111.444.777-35",
//	}, schema)
//	// errs is empty
//
// Declarative rule strings produce the same Rules value:
//
//	rules, err := validator.ParseRules("required|cpf")
//
// # Error Handling
//
// Invalid input is never reported through a Go error from ValidateField or
// ValidateObject; it is returned as ValidationError values. Schema.Validate
// wraps non-empty results into ValidationErrors so callers can use
// errors.As, ExtractValidationErrors or IsValidationError; errors.Is matches
// ErrValidationFailed. Only malformed
// configuration (a bad regular expression in a rule string, a duplicate rule
// registration) produces an error.
//
// Panics raised by Custom rule functions are not recovered.
package validator
