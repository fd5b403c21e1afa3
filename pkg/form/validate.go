package form

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/eduplatform/brforms/pkg/logger"
	"github.com/eduplatform/brforms/pkg/validator"
)

// DefaultMaxMemory is the multipart memory limit used by Validate.
const DefaultMaxMemory = 10 << 20

// FieldError is the failure of one input. The embedded ValidationError
// names the field by its display name; Name is the input name.
type FieldError struct {
	Name string `json:"name"`
	validator.ValidationError
}

// Validate parses the request body and validates every input.
func (f *Form) Validate(r *http.Request) ([]FieldError, error) {
	values, files, err := ParseRequest(r)
	if err != nil {
		return nil, err
	}
	return f.ValidateValues(values, files), nil
}

// ValidateValues validates every input against already parsed values.
// Inputs without rules are skipped. Errors follow input order.
func (f *Form) ValidateValues(values url.Values, files map[string][]*multipart.FileHeader) []FieldError {
	var errs []FieldError
	for _, in := range f.Inputs {
		if fe := f.validateInput(in, values, files); fe != nil {
			errs = append(errs, *fe)
		}
	}

	f.log().LogAttrs(context.Background(), slog.LevelDebug, "form validated",
		logger.Component("form"), logger.Form(f.ID), logger.ErrorCount(len(errs)))
	return errs
}

// ValidateAndDisplay validates the request and records each failure in st,
// replacing whatever st held before. It reports whether the form is valid.
// A nil st only validates.
func (f *Form) ValidateAndDisplay(r *http.Request, st *State) (bool, error) {
	if st == nil {
		st = NewState()
	}
	st.Clear()

	errs, err := f.Validate(r)
	if err != nil {
		return false, err
	}
	for _, fe := range errs {
		st.Show(fe.Name, fe.Message)
	}
	return len(errs) == 0, nil
}

// ValidateField validates a single input.
func (f *Form) ValidateField(name string, values url.Values, files map[string][]*multipart.FileHeader) (*FieldError, error) {
	in, ok := f.Input(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q in form %q", ErrUnknownInput, name, f.ID)
	}
	return f.validateInput(in, values, files), nil
}

func (f *Form) validateInput(in *Input, values url.Values, files map[string][]*multipart.FileHeader) *FieldError {
	if len(in.rules) == 0 {
		return nil
	}
	err := f.validator.ValidateField(in.Value(values, files), in.rules, in.DisplayName())
	if err == nil {
		return nil
	}
	return &FieldError{Name: in.Name, ValidationError: *err}
}

// ParseRequest extracts submitted values and uploaded files from r. Multipart
// bodies are parsed with DefaultMaxMemory.
func ParseRequest(r *http.Request) (url.Values, map[string][]*multipart.FileHeader, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "multipart/form-data" {
		if r.MultipartForm == nil {
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return nil, nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
			}
		}
		return r.Form, r.MultipartForm.File, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	return r.Form, nil, nil
}
