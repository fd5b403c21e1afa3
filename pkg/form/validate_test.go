package form_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplatform/brforms/pkg/form"
)

func postForm(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func validSubmission() url.Values {
	return url.Values{
		"nome":  {"Maria"},
		"email": {"maria@x.com"},
		"cpf":   {"111.444.777-35"},
		"idade": {"10"},
		"turno": {"manha"},
	}
}

func TestInputValue(t *testing.T) {
	values := url.Values{
		"aceite": {"on"},
		"turno":  {"tarde"},
		"idade":  {"12.5"},
		"nota":   {"abc"},
		"nome":   {"Ana"},
		"vazio":  {""},
	}
	files := map[string][]*multipart.FileHeader{
		"foto": {{Filename: "foto.png"}},
	}

	tests := []struct {
		name  string
		input form.Input
		want  any
	}{
		{"checked checkbox", form.Input{Name: "aceite", Type: "checkbox"}, true},
		{"unchecked checkbox", form.Input{Name: "newsletter", Type: "checkbox"}, false},
		{"chosen radio", form.Input{Name: "turno", Type: "radio"}, "tarde"},
		{"unchosen radio", form.Input{Name: "serie", Type: "radio"}, nil},
		{"number", form.Input{Name: "idade", Type: "number"}, 12.5},
		{"unreadable number", form.Input{Name: "nota", Type: "range"}, nil},
		{"empty number", form.Input{Name: "vazio", Type: "number"}, nil},
		{"text", form.Input{Name: "nome", Type: "text"}, "Ana"},
		{"untyped", form.Input{Name: "nome"}, "Ana"},
		{"missing text", form.Input{Name: "sobrenome"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Value(values, files))
		})
	}

	t.Run("file", func(t *testing.T) {
		in := form.Input{Name: "foto", Type: "file"}
		got, ok := in.Value(values, files).([]*multipart.FileHeader)
		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, "foto.png", got[0].Filename)
	})
}

func TestValidate(t *testing.T) {
	f := loadMatricula(t)

	t.Run("valid submission", func(t *testing.T) {
		errs, err := f.Validate(postForm(validSubmission()))
		require.NoError(t, err)
		assert.Empty(t, errs)
	})

	t.Run("errors follow input order and use display names", func(t *testing.T) {
		errs, err := f.Validate(postForm(url.Values{
			"nome":     {"Jo"},
			"email":    {""},
			"cpf":      {"111.444.777-36"},
			"telefone": {"(23) 99999-9999"},
			"idade":    {"20"},
		}))
		require.NoError(t, err)
		require.Len(t, errs, 6)

		names := make([]string, len(errs))
		for i, fe := range errs {
			names[i] = fe.Name
		}
		assert.Equal(t, []string{"nome", "email", "cpf", "telefone", "idade", "turno"}, names)

		assert.Equal(t, "Nome completo", errs[0].Field)
		assert.Equal(t, "Deve ter pelo menos 3 caracteres", errs[0].Message)
		assert.Equal(t, "seu@email.com", errs[1].Field)
		assert.Equal(t, "Este campo é obrigatório", errs[1].Message)
		assert.Equal(t, "CPF deve ter um formato válido", errs[2].Message)
		assert.Equal(t, "111.444.777-36", errs[2].Value)
		assert.Equal(t, "Telefone deve ter um formato válido", errs[3].Message)
		assert.Equal(t, "Valor máximo é 18", errs[4].Message)
		assert.Equal(t, 20.0, errs[4].Value)
		assert.Equal(t, "Turno", errs[5].Field)
	})

	t.Run("multipart uploads", func(t *testing.T) {
		upload, err := form.New("documentos", []*form.Input{
			{Name: "rg", Type: "file", Label: "RG", Validate: "required"},
			{Name: "cep", Validate: "required|cep"},
		})
		require.NoError(t, err)

		build := func(withFile bool) *http.Request {
			body := &bytes.Buffer{}
			w := multipart.NewWriter(body)
			require.NoError(t, w.WriteField("cep", "01310-100"))
			if withFile {
				part, err := w.CreateFormFile("rg", "rg.pdf")
				require.NoError(t, err)
				_, err = part.Write([]byte("%PDF-1.4"))
				require.NoError(t, err)
			}
			require.NoError(t, w.Close())

			r := httptest.NewRequest(http.MethodPost, "/", body)
			r.Header.Set("Content-Type", w.FormDataContentType())
			return r
		}

		errs, err := upload.Validate(build(true))
		require.NoError(t, err)
		assert.Empty(t, errs)

		errs, err = upload.Validate(build(false))
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "rg", errs[0].Name)
		assert.Equal(t, "RG", errs[0].Field)
	})

	t.Run("malformed multipart body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("garbage"))
		r.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
		_, err := f.Validate(r)
		assert.ErrorIs(t, err, form.ErrInvalidForm)
	})
}

func TestValidateAndDisplay(t *testing.T) {
	f := loadMatricula(t)
	st := form.NewState()
	st.Show("stale", "old message")

	values := validSubmission()
	values.Set("cpf", "111.444.777-36")

	ok, err := f.ValidateAndDisplay(postForm(values), st)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, map[string]string{"cpf": "CPF deve ter um formato válido"}, st.Errors())
	assert.Equal(t, form.InvalidClass, st.Class("cpf"))
	assert.Empty(t, st.Class("nome"))
	assert.Empty(t, st.Message("stale"))

	ok, err = f.ValidateAndDisplay(postForm(validSubmission()), st)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, st.HasErrors())

	t.Run("nil state", func(t *testing.T) {
		values := validSubmission()
		values.Set("cpf", "111.444.777-36")

		var ok bool
		require.NotPanics(t, func() {
			ok, err = f.ValidateAndDisplay(postForm(values), nil)
		})
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestBinding(t *testing.T) {
	f := loadMatricula(t)
	var st form.State
	b := f.Bind(&st)

	t.Run("blur shows and hides the error", func(t *testing.T) {
		fe, err := b.Blur("cpf", url.Values{"cpf": {"111.444.777-36"}}, nil)
		require.NoError(t, err)
		require.NotNil(t, fe)
		assert.Equal(t, "CPF deve ter um formato válido", st.Message("cpf"))
		assert.True(t, st.HasError("cpf"))

		fe, err = b.Blur("cpf", url.Values{"cpf": {"111.444.777-35"}}, nil)
		require.NoError(t, err)
		assert.Nil(t, fe)
		assert.False(t, st.HasError("cpf"))
	})

	t.Run("blur on input without rules clears", func(t *testing.T) {
		st.Show("observacoes", "x")
		fe, err := b.Blur("observacoes", url.Values{}, nil)
		require.NoError(t, err)
		assert.Nil(t, fe)
		assert.False(t, st.HasError("observacoes"))
	})

	t.Run("input clears without validating", func(t *testing.T) {
		_, err := b.Blur("email", url.Values{"email": {"bad"}}, nil)
		require.NoError(t, err)
		require.True(t, st.HasError("email"))

		require.NoError(t, b.Input("email"))
		assert.False(t, st.HasError("email"))
		assert.Same(t, &st, b.State())
	})

	t.Run("unknown input", func(t *testing.T) {
		_, err := b.Blur("rg", url.Values{}, nil)
		assert.ErrorIs(t, err, form.ErrUnknownInput)
		assert.ErrorIs(t, b.Input("rg"), form.ErrUnknownInput)
	})
}

func TestFormat(t *testing.T) {
	f := loadMatricula(t)

	tests := []struct {
		name       string
		input      string
		value      string
		cursor     int
		wantValue  string
		wantCursor int
		wantOK     bool
	}{
		{"cursor moves past inserted punctuation", "cpf", "1234567890", 10, "123.456.789-0", 13, true},
		{"cursor inside value keeps offset", "cpf", "12345", 2, "123.45", 3, true},
		{"phone switches layout", "telefone", "(11) 9876-54321", 15, "(11) 98765-4321", 15, true},
		{"cursor clamped to new length", "cpf", "123", 100, "123", 3, true},
		{"cursor never negative", "cpf", "abc", 1, "", 0, true},
		{"input without formatter", "nome", "maria", 2, "maria", 2, false},
		{"unknown input", "rg", "123", 1, "123", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, cursor, ok := f.Format(tt.input, tt.value, tt.cursor)
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantCursor, cursor)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
