package validator

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingIntRegex = regexp.MustCompile(`^[+-]?\d+`)

// ParseRules converts a declarative rule string such as
// "required|minLength:5|pattern:^\d+$" into Rules.
//
// Rules are separated by "|" and a parameter follows the first ":". Numeric
// parameters default when omitted or unreadable (minLength 1, maxLength 255,
// min 0, max math.MaxFloat64); pattern defaults to ".*". Unknown names are
// logged and dropped. Names registered in the registry beyond the grammar
// (url, date, age, ...) are kept with their raw parameter.
//
// An invalid pattern returns an error wrapping ErrInvalidPattern.
func (v *Validator) ParseRules(s string) (Rules, error) {
	var rules Rules

	for _, token := range strings.Split(s, "|") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		name, param, hasParam := strings.Cut(token, ":")
		name = strings.TrimSpace(name)

		switch name {
		case RuleRequired, RuleEmail, RuleCPF, RuleCNPJ, RuleTelefone, RuleCEP:
			rules = append(rules, Rule{Name: name})
		case RuleMinLength:
			rules = append(rules, MinLength(intParam(param, hasParam, 1)))
		case RuleMaxLength:
			rules = append(rules, MaxLength(intParam(param, hasParam, 255)))
		case RuleMin:
			rules = append(rules, Min(floatParam(param, hasParam, 0)))
		case RuleMax:
			rules = append(rules, Max(floatParam(param, hasParam, math.MaxFloat64)))
		case RulePattern:
			expr := ".*"
			if hasParam {
				expr = param
			}
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, expr, err)
			}
			rules = append(rules, Pattern(re))
		default:
			if name != RuleCustom && v.registry.Has(name) {
				rule := Rule{Name: name}
				if hasParam {
					rule.Param = param
				}
				rules = append(rules, rule)
				continue
			}
			v.warnUnknown(name, slog.String("rules", s))
		}
	}

	return rules, nil
}

// MustParseRules is like ParseRules but panics on error. Intended for rule
// strings that are compile-time constants.
func (v *Validator) MustParseRules(s string) Rules {
	rules, err := v.ParseRules(s)
	if err != nil {
		panic(err)
	}
	return rules
}

// ParseRules parses s with the default validator.
func ParseRules(s string) (Rules, error) {
	return defaultValidator.ParseRules(s)
}

// MustParseRules parses s with the default validator and panics on error.
func MustParseRules(s string) Rules {
	return defaultValidator.MustParseRules(s)
}

func intParam(param string, present bool, def int) int {
	if !present {
		return def
	}
	m := leadingIntRegex.FindString(strings.TrimSpace(param))
	if m == "" {
		return def
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return def
	}
	return n
}

func floatParam(param string, present bool, def float64) float64 {
	if !present {
		return def
	}
	f := parseFloat(param)
	if math.IsNaN(f) {
		return def
	}
	return f
}
