package validator

import (
	"regexp"
	"time"
)

// Built-in rule names. They double as the tokens accepted by ParseRules.
const (
	RuleRequired   = "required"
	RuleEmail      = "email"
	RuleCPF        = "cpf"
	RuleCNPJ       = "cnpj"
	RuleTelefone   = "telefone"
	RuleCEP        = "cep"
	RuleMinLength  = "minLength"
	RuleMaxLength  = "maxLength"
	RuleMin        = "min"
	RuleMax        = "max"
	RulePattern    = "pattern"
	RuleCustom     = "custom"
	RuleURL        = "url"
	RuleNumber     = "number"
	RuleInteger    = "integer"
	RuleDate       = "date"
	RuleDateAfter  = "dateAfter"
	RuleDateBefore = "dateBefore"
	RuleAge        = "age"
)

// CustomFunc is a caller-supplied check. A non-empty message marks the value
// invalid and is reported verbatim; otherwise ok decides validity and failures
// use the generic custom message.
type CustomFunc func(value any) (ok bool, message string)

// Rule is a single named check with an optional parameter.
type Rule struct {
	Name  string
	Param any
}

// Rules is the ordered rule set of one field. Order matters: evaluation stops
// at the first failing rule.
type Rules []Rule

// Has reports whether the set contains a rule with the given name.
func (rs Rules) Has(name string) bool {
	for _, r := range rs {
		if r.Name == name {
			return true
		}
	}
	return false
}

// Names returns rule names in evaluation order.
func (rs Rules) Names() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return names
}

func Required() Rule { return Rule{Name: RuleRequired} }
func Email() Rule    { return Rule{Name: RuleEmail} }
func CPF() Rule      { return Rule{Name: RuleCPF} }
func CNPJ() Rule     { return Rule{Name: RuleCNPJ} }
func Telefone() Rule { return Rule{Name: RuleTelefone} }
func CEP() Rule      { return Rule{Name: RuleCEP} }
func URL() Rule      { return Rule{Name: RuleURL} }
func Number() Rule   { return Rule{Name: RuleNumber} }
func Integer() Rule  { return Rule{Name: RuleInteger} }
func Date() Rule     { return Rule{Name: RuleDate} }

// MinLength requires at least n characters.
func MinLength(n int) Rule { return Rule{Name: RuleMinLength, Param: n} }

// MaxLength allows at most n characters.
func MaxLength(n int) Rule { return Rule{Name: RuleMaxLength, Param: n} }

// Min requires a numeric value greater than or equal to n.
func Min(n float64) Rule { return Rule{Name: RuleMin, Param: n} }

// Max requires a numeric value less than or equal to n.
func Max(n float64) Rule { return Rule{Name: RuleMax, Param: n} }

// Pattern requires the value to match re.
func Pattern(re *regexp.Regexp) Rule { return Rule{Name: RulePattern, Param: re} }

// Custom wraps a caller-supplied check.
func Custom(fn CustomFunc) Rule { return Rule{Name: RuleCustom, Param: fn} }

// DateAfter requires a date strictly after t.
func DateAfter(t time.Time) Rule { return Rule{Name: RuleDateAfter, Param: t} }

// DateBefore requires a date strictly before t.
func DateBefore(t time.Time) Rule { return Rule{Name: RuleDateBefore, Param: t} }

// Age requires a birth date at least years old.
func Age(years int) Rule { return Rule{Name: RuleAge, Param: years} }
