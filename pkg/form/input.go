package form

import (
	"encoding/json"
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"

	"github.com/eduplatform/brforms/pkg/validator"
)

// Input types with dedicated value extraction. Any other type is read as text.
const (
	TypeText     = "text"
	TypeCheckbox = "checkbox"
	TypeRadio    = "radio"
	TypeNumber   = "number"
	TypeRange    = "range"
	TypeFile     = "file"
)

// Input describes one form control.
type Input struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
	Label       string `yaml:"label,omitempty" json:"label,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Validate    string `yaml:"validate,omitempty" json:"validate,omitempty"`
	Format      string `yaml:"format,omitempty" json:"format,omitempty"`

	rules validator.Rules
}

// DisplayName is the name used in validation errors: the label, else the
// placeholder, else the input name.
func (in *Input) DisplayName() string {
	switch {
	case in.Label != "":
		return in.Label
	case in.Placeholder != "":
		return in.Placeholder
	default:
		return in.Name
	}
}

// Rules returns the parsed rule set.
func (in *Input) Rules() validator.Rules {
	return in.rules
}

// Required reports whether the input carries the required rule.
func (in *Input) Required() bool {
	return in.rules.Has(validator.RuleRequired)
}

// MarshalJSON adds the derived required flag so clients can mark the control.
func (in *Input) MarshalJSON() ([]byte, error) {
	type plain Input
	return json.Marshal(struct {
		*plain
		Required bool `json:"required,omitempty"`
	}{(*plain)(in), in.Required()})
}

// Value extracts the typed value of the input from a submission.
func (in *Input) Value(values url.Values, files map[string][]*multipart.FileHeader) any {
	switch strings.ToLower(in.Type) {
	case TypeCheckbox:
		_, checked := values[in.Name]
		return checked
	case TypeRadio:
		if v := values.Get(in.Name); v != "" {
			return v
		}
		return nil
	case TypeNumber, TypeRange:
		f, err := strconv.ParseFloat(strings.TrimSpace(values.Get(in.Name)), 64)
		if err != nil {
			return nil
		}
		return f
	case TypeFile:
		return files[in.Name]
	default:
		return values.Get(in.Name)
	}
}
