package form

import "maps"

// InvalidClass is the CSS class Class returns for fields with an error.
const InvalidClass = "is-invalid"

// State holds the error currently displayed for each field. The zero value
// is ready to use. A State belongs to one render and is not safe for
// concurrent use.
type State struct {
	errors map[string]string
}

// NewState returns an empty State.
func NewState() *State {
	return &State{}
}

// Show displays message under the field, replacing any previous one.
func (s *State) Show(name, message string) {
	if s.errors == nil {
		s.errors = make(map[string]string)
	}
	s.errors[name] = message
}

// Hide removes the field's error.
func (s *State) Hide(name string) {
	delete(s.errors, name)
}

// Clear removes every error.
func (s *State) Clear() {
	clear(s.errors)
}

func (s *State) Message(name string) string {
	return s.errors[name]
}

func (s *State) HasError(name string) bool {
	_, ok := s.errors[name]
	return ok
}

// Class returns InvalidClass when the field has an error, otherwise "".
func (s *State) Class(name string) string {
	if s.HasError(name) {
		return InvalidClass
	}
	return ""
}

func (s *State) HasErrors() bool {
	return len(s.errors) > 0
}

// Errors returns a copy of the displayed messages keyed by field name.
func (s *State) Errors() map[string]string {
	return maps.Clone(s.errors)
}
