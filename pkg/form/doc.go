// Package form binds validation rules and formatters to the inputs of an HTML
// form.
//
// A Form is a list of Input descriptors carrying the same attributes a page
// would put on its elements: a name, an input type, a rule string
// ("required|cpf"), a label used in messages and an optional formatter name.
// Forms are usually declared in YAML and loaded once at startup:
//
//	id: matricula
//	inputs:
//	  - name: cpf
//	    type: text
//	    label: CPF
//	    validate: required|cpf
//	    format: cpf
//
//	forms, err := form.LoadFS(schemas, "forms")
//
// Rule strings are parsed when the form is loaded, so a bad pattern fails at
// startup rather than on the first request.
//
// # Validation
//
// Validate reads a submitted request, extracts one typed value per input and
// runs the input's rules. Value extraction depends on the input type:
// checkboxes yield bool, radios the chosen value or nil, number and range
// inputs float64 or nil, file inputs the uploaded headers, everything else
// the submitted string.
//
// ValidateAndDisplay additionally records the failures in a State, which a
// template reads to render messages and the "is-invalid" class.
//
// # Live feedback
//
// Bind returns a Binding with the hooks a page wires to its inputs: Blur
// re-validates one field and updates the State, Input clears the field's
// error while the user types. Format rewrites a value through the input's
// formatter and moves the caret by the change in length.
package form
