package live

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/eduplatform/brforms/pkg/form"
	"github.com/eduplatform/brforms/pkg/logger"
	"github.com/eduplatform/brforms/pkg/requestid"
)

// Handler serves the live validation routes.
type Handler struct {
	forms     map[string]*form.Form
	logger    *slog.Logger
	component func(FieldErrorParams) templ.Component
	router    chi.Router
}

// Option configures a Handler.
type Option func(*Handler)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithErrorComponent replaces the default FieldError fragment. The component
// must keep the id returned by ErrorTarget so DataStar can patch it.
func WithErrorComponent(fn func(FieldErrorParams) templ.Component) Option {
	return func(h *Handler) {
		if fn != nil {
			h.component = fn
		}
	}
}

// NewHandler returns the router for forms keyed by form ID.
func NewHandler(forms map[string]*form.Form, opts ...Option) *Handler {
	h := &Handler{
		forms:     forms,
		logger:    logger.Discard(),
		component: FieldError,
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Route("/forms/{form}", func(r chi.Router) {
		r.Get("/", h.schema)
		r.Post("/validate", h.validate)
		r.Post("/fields/{field}/blur", h.blur)
		r.Post("/fields/{field}/input", h.input)
	})
	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// ValidateResponse is the JSON body of the validate route.
type ValidateResponse struct {
	Valid  bool             `json:"valid"`
	Errors []form.FieldError `json:"errors"`
}

// BlurResponse is the JSON body of the blur route for plain requests.
type BlurResponse struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// InputResponse is the JSON body of the input route for plain requests.
type InputResponse struct {
	Value     string `json:"value"`
	Cursor    int    `json:"cursor"`
	Formatted bool   `json:"formatted"`
}

func (h *Handler) schema(w http.ResponseWriter, r *http.Request) {
	f, ok := h.lookupForm(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	f, ok := h.lookupForm(w, r)
	if !ok {
		return
	}

	values, files, err := readValues(r)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err, logger.Form(f.ID))
		return
	}

	st := form.NewState()
	errs := f.ValidateValues(values, files)
	for _, fe := range errs {
		st.Show(fe.Name, fe.Message)
	}

	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, in := range f.Inputs {
			if len(in.Rules()) == 0 {
				continue
			}
			if err := h.patchError(sse, f.ID, in.Name, st.Message(in.Name)); err != nil {
				h.logger.WarnContext(r.Context(), "failed to patch field error", logger.Error(err), logger.Form(f.ID), logger.Field(in.Name))
				return
			}
		}
		return
	}

	status := http.StatusOK
	if len(errs) > 0 {
		status = http.StatusUnprocessableEntity
	}
	if errs == nil {
		errs = []form.FieldError{}
	}
	writeJSON(w, status, ValidateResponse{Valid: len(errs) == 0, Errors: errs})
}

func (h *Handler) blur(w http.ResponseWriter, r *http.Request) {
	f, name, ok := h.lookupField(w, r)
	if !ok {
		return
	}

	values, files, err := readValues(r)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err, logger.Form(f.ID), logger.Field(name))
		return
	}

	st := form.NewState()
	if _, err := f.Bind(st).Blur(name, values, files); err != nil {
		h.fail(w, r, http.StatusInternalServerError, err, logger.Form(f.ID), logger.Field(name))
		return
	}

	h.renderError(w, r, f.ID, name, st)
}

func (h *Handler) input(w http.ResponseWriter, r *http.Request) {
	f, name, ok := h.lookupField(w, r)
	if !ok {
		return
	}

	values, _, err := readValues(r)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err, logger.Form(f.ID), logger.Field(name))
		return
	}

	value := values.Get(name)
	if v, present := values["value"]; present && len(v) > 0 {
		value = v[0]
	}
	cursor, err := strconv.Atoi(values.Get("cursor"))
	if err != nil {
		cursor = utf8.RuneCountInString(value)
	}

	st := form.NewState()
	if err := f.Bind(st).Input(name); err != nil {
		h.fail(w, r, http.StatusInternalServerError, err, logger.Form(f.ID), logger.Field(name))
		return
	}
	formatted, cursor, changed := f.Format(name, value, cursor)

	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		if err := h.patchError(sse, f.ID, name, st.Message(name)); err != nil {
			h.logger.WarnContext(r.Context(), "failed to patch field error", logger.Error(err), logger.Form(f.ID), logger.Field(name))
			return
		}
		if !changed {
			return
		}
		data, err := json.Marshal(map[string]any{name: formatted})
		if err != nil {
			h.logger.ErrorContext(r.Context(), "failed to encode signals", logger.Error(err))
			return
		}
		if err := sse.PatchSignals(data); err != nil {
			h.logger.WarnContext(r.Context(), "failed to patch signals", logger.Error(err), logger.Form(f.ID), logger.Field(name))
		}
		return
	}

	writeJSON(w, http.StatusOK, InputResponse{Value: formatted, Cursor: cursor, Formatted: changed})
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, formID, name string, st *form.State) {
	switch {
	case IsDataStar(r):
		if err := h.patchError(datastar.NewSSE(w, r), formID, name, st.Message(name)); err != nil {
			h.logger.WarnContext(r.Context(), "failed to patch field error", logger.Error(err), logger.Form(formID), logger.Field(name))
		}
	case IsHTMX(r):
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		params := FieldErrorParams{Form: formID, Field: name, Message: st.Message(name)}
		if err := h.component(params).Render(r.Context(), w); err != nil {
			h.logger.ErrorContext(r.Context(), "failed to render field error", logger.Error(err), logger.Form(formID), logger.Field(name))
		}
	default:
		writeJSON(w, http.StatusOK, BlurResponse{
			Field:   name,
			Valid:   !st.HasError(name),
			Message: st.Message(name),
		})
	}
}

func (h *Handler) patchError(sse *datastar.ServerSentEventGenerator, formID, name, message string) error {
	params := FieldErrorParams{Form: formID, Field: name, Message: message}
	return sse.PatchElementTempl(h.component(params),
		datastar.WithSelector("#"+ErrorTarget(name)),
		datastar.WithMode(datastar.ElementPatchModeOuter),
	)
}

func (h *Handler) lookupForm(w http.ResponseWriter, r *http.Request) (*form.Form, bool) {
	id := chi.URLParam(r, "form")
	f, ok := h.forms[id]
	if !ok {
		h.fail(w, r, http.StatusNotFound, errors.New("form not found"), logger.Form(id))
		return nil, false
	}
	return f, true
}

func (h *Handler) lookupField(w http.ResponseWriter, r *http.Request) (*form.Form, string, bool) {
	f, ok := h.lookupForm(w, r)
	if !ok {
		return nil, "", false
	}
	name := chi.URLParam(r, "field")
	if _, ok := f.Input(name); !ok {
		h.fail(w, r, http.StatusNotFound, form.ErrUnknownInput, logger.Form(f.ID), logger.Field(name))
		return nil, "", false
	}
	return f, name, true
}

// errorBody mirrors the error envelope of the JSON routes.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, err error, attrs ...slog.Attr) {
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	attrs = append(attrs,
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("live"),
	)
	h.logger.LogAttrs(r.Context(), level, "request error", attrs...)

	var body errorBody
	body.Error.Code = http.StatusText(status)
	body.Error.Message = err.Error()
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
