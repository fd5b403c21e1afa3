package validator

// Field binds a field name to its ordered rule set.
type Field struct {
	Name  string
	Rules Rules
}

// NewField builds a Field from rules given in evaluation order.
func NewField(name string, rules ...Rule) Field {
	return Field{Name: name, Rules: rules}
}

// Schema is the ordered field-to-rules map of a flat record.
type Schema []Field

// Rules returns the rule set for name.
func (s Schema) Rules(name string) (Rules, bool) {
	for _, f := range s {
		if f.Name == name {
			return f.Rules, true
		}
	}
	return nil, false
}

// Validate checks data with the default validator and returns
// ValidationErrors, or nil when the record is valid.
func (s Schema) Validate(data map[string]any) error {
	errs := ValidateObject(data, s)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
