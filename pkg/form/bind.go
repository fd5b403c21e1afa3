package form

import (
	"fmt"
	"mime/multipart"
	"net/url"
	"unicode/utf8"

	"github.com/eduplatform/brforms/pkg/formatter"
)

// Binding connects a form to a State for per-field feedback.
type Binding struct {
	form  *Form
	state *State
}

// Bind returns the live-feedback hooks of f writing to st.
func (f *Form) Bind(st *State) *Binding {
	return &Binding{form: f, state: st}
}

// State returns the state the binding writes to.
func (b *Binding) State() *State {
	return b.state
}

// Blur validates the named input when it loses focus and shows or hides its
// error. It returns the failure, or nil when the value is valid.
func (b *Binding) Blur(name string, values url.Values, files map[string][]*multipart.FileHeader) (*FieldError, error) {
	fe, err := b.form.ValidateField(name, values, files)
	if err != nil {
		return nil, err
	}
	if fe != nil {
		b.state.Show(name, fe.Message)
	} else {
		b.state.Hide(name)
	}
	return fe, nil
}

// Input clears the named input's error while the user types. Validation
// waits for the next Blur.
func (b *Binding) Input(name string) error {
	if _, ok := b.form.Input(name); !ok {
		return fmt.Errorf("%w: %q in form %q", ErrUnknownInput, name, b.form.ID)
	}
	b.state.Hide(name)
	return nil
}

// Format rewrites value through the named input's formatter and moves cursor
// by the change in length, clamped to the new value. The boolean is false
// when the input has no formatter, in which case value and cursor are
// returned unchanged.
func (f *Form) Format(name, value string, cursor int) (string, int, bool) {
	in, ok := f.Input(name)
	if !ok || in.Format == "" {
		return value, cursor, false
	}
	fn, ok := formatter.Lookup(in.Format)
	if !ok {
		return value, cursor, false
	}

	formatted := fn(value)
	n := utf8.RuneCountInString(formatted)
	cursor += n - utf8.RuneCountInString(value)
	return formatted, max(0, min(cursor, n)), true
}
