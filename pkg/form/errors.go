package form

import "errors"

var (
	ErrInvalidSchema = errors.New("invalid form schema")
	ErrDuplicateForm = errors.New("duplicate form id")
	ErrNoSchemas     = errors.New("no form schemas found")
	ErrUnknownInput  = errors.New("unknown input")
	ErrInvalidForm   = errors.New("invalid form data")
)
