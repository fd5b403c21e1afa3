package form

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eduplatform/brforms/pkg/formatter"
	"github.com/eduplatform/brforms/pkg/validator"
)

// Form is a named set of inputs with parsed rules. It is immutable after
// construction and safe for concurrent use.
type Form struct {
	ID     string   `yaml:"id" json:"id"`
	Inputs []*Input `yaml:"inputs" json:"inputs"`

	index     map[string]*Input
	validator *validator.Validator
	logger    *slog.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithValidator sets the validator used to parse and apply rules.
func WithValidator(v *validator.Validator) Option {
	return func(f *Form) {
		if v != nil {
			f.validator = v
		}
	}
}

// WithLogger sets the logger for validation summaries.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// New builds a form from inputs and parses their rule strings.
func New(id string, inputs []*Input, opts ...Option) (*Form, error) {
	f := &Form{ID: id, Inputs: inputs}
	if err := f.init(opts...); err != nil {
		return nil, err
	}
	return f, nil
}

// Load decodes a YAML form schema from r.
func Load(r io.Reader, opts ...Option) (*Form, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	f := &Form{}
	if err := dec.Decode(f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSchema)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	if err := f.init(opts...); err != nil {
		return nil, err
	}
	return f, nil
}

// LoadFile decodes the YAML form schema stored at name.
func LoadFile(name string, opts ...Option) (*Form, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f, err := Load(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// LoadFS loads every .yaml and .yml file directly under dir of fsys and
// returns the forms keyed by ID.
func LoadFS(fsys fs.FS, dir string, opts ...Option) (map[string]*Form, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	forms := make(map[string]*Form)
	for _, entry := range entries {
		ext := strings.ToLower(path.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		name := path.Join(dir, entry.Name())
		file, err := fsys.Open(name)
		if err != nil {
			return nil, err
		}
		f, err := Load(file, opts...)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		if _, exists := forms[f.ID]; exists {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateForm, f.ID, name)
		}
		forms[f.ID] = f
	}

	if len(forms) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoSchemas, dir)
	}
	return forms, nil
}

func (f *Form) init(opts ...Option) error {
	for _, opt := range opts {
		opt(f)
	}
	if f.validator == nil {
		f.validator = validator.New(validator.WithLogger(f.logger))
	}

	if strings.TrimSpace(f.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidSchema)
	}
	if len(f.Inputs) == 0 {
		return fmt.Errorf("%w: form %q has no inputs", ErrInvalidSchema, f.ID)
	}

	f.index = make(map[string]*Input, len(f.Inputs))
	for i, in := range f.Inputs {
		if in == nil || in.Name == "" {
			return fmt.Errorf("%w: form %q input %d has no name", ErrInvalidSchema, f.ID, i)
		}
		if _, dup := f.index[in.Name]; dup {
			return fmt.Errorf("%w: form %q declares input %q twice", ErrInvalidSchema, f.ID, in.Name)
		}
		if in.Format != "" {
			if _, ok := formatter.Lookup(in.Format); !ok {
				return fmt.Errorf("%w: input %q: unknown format %q", ErrInvalidSchema, in.Name, in.Format)
			}
		}

		rules, err := f.validator.ParseRules(in.Validate)
		if err != nil {
			return fmt.Errorf("%w: input %q: %w", ErrInvalidSchema, in.Name, err)
		}
		in.rules = rules
		f.index[in.Name] = in
	}
	return nil
}

// Input returns the input called name.
func (f *Form) Input(name string) (*Input, bool) {
	in, ok := f.index[name]
	return in, ok
}

// Schema returns the rule sets keyed by input name, for validating records
// that were not submitted through the form.
func (f *Form) Schema() validator.Schema {
	schema := make(validator.Schema, 0, len(f.Inputs))
	for _, in := range f.Inputs {
		if len(in.rules) > 0 {
			schema = append(schema, validator.NewField(in.Name, in.rules...))
		}
	}
	return schema
}

func (f *Form) log() *slog.Logger {
	if f.logger != nil {
		return f.logger
	}
	return slog.Default()
}
