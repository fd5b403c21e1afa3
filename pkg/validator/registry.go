package validator

import (
	"fmt"
	"slices"
	"sync"
)

// CheckFunc reports whether value satisfies a rule with the given parameter.
type CheckFunc func(value, param any) bool

// Registry maps rule names to checks and message templates.
// It is safe for concurrent use; registration is expected to happen during
// startup, before the first validation.
type Registry struct {
	mu       sync.RWMutex
	checks   map[string]CheckFunc
	messages map[string]MessageFunc
}

// NewRegistry returns a registry holding the built-in rules.
func NewRegistry() *Registry {
	return &Registry{
		checks: map[string]CheckFunc{
			RuleRequired:   checkRequired,
			RuleEmail:      checkEmail,
			RuleCPF:        checkCPF,
			RuleCNPJ:       checkCNPJ,
			RuleTelefone:   checkTelefone,
			RuleCEP:        checkCEP,
			RuleMinLength:  checkMinLength,
			RuleMaxLength:  checkMaxLength,
			RuleMin:        checkMin,
			RuleMax:        checkMax,
			RulePattern:    checkPattern,
			RuleURL:        checkURL,
			RuleNumber:     checkNumber,
			RuleInteger:    checkInteger,
			RuleDate:       checkDate,
			RuleDateAfter:  checkDateAfter,
			RuleDateBefore: checkDateBefore,
			RuleAge:        checkAge,
		},
		messages: builtinMessages(),
	}
}

// Register adds a named rule. A nil message falls back to the generic
// "Valor inválido" text.
func (r *Registry) Register(name string, check CheckFunc, message MessageFunc) error {
	if name == "" || check == nil {
		return ErrInvalidRule
	}
	if name == RuleCustom {
		return fmt.Errorf("%w: %q", ErrRuleExists, name)
	}
	if message == nil {
		message = Literal(msgCustom)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.checks[name]; ok {
		return fmt.Errorf("%w: %q", ErrRuleExists, name)
	}
	r.checks[name] = check
	r.messages[name] = message
	return nil
}

// Lookup returns the check registered under name.
func (r *Registry) Lookup(name string) (CheckFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	check, ok := r.checks[name]
	return check, ok
}

// Has reports whether name is a known rule, including custom.
func (r *Registry) Has(name string) bool {
	if name == RuleCustom {
		return true
	}
	_, ok := r.Lookup(name)
	return ok
}

// Message renders the failure message of name for the given parameter.
func (r *Registry) Message(name string, param any) string {
	r.mu.RLock()
	msg, ok := r.messages[name]
	r.mu.RUnlock()

	if !ok {
		return msgCustom
	}
	return msg(param)
}

// Names returns the registered rule names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.checks))
	for name := range r.checks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var defaultRegistry = NewRegistry()

// Register adds a rule to the default registry used by the package-level functions.
func Register(name string, check CheckFunc, message MessageFunc) error {
	return defaultRegistry.Register(name, check, message)
}
