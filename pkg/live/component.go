package live

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// FieldErrorParams feeds the error fragment of one input.
type FieldErrorParams struct {
	Form    string
	Field   string
	Message string
}

// ErrorTarget returns the id of the element holding the field's message.
func ErrorTarget(field string) string {
	return field + "-error"
}

// FieldError renders the default error fragment: a div with id
// "{field}-error" and class "invalid-feedback". An empty message renders an
// empty div, which clears a previously displayed error when swapped in.
func FieldError(p FieldErrorParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="`+templ.EscapeString(ErrorTarget(p.Field))+
			`" class="invalid-feedback">`+templ.EscapeString(p.Message)+`</div>`)
		return err
	})
}
