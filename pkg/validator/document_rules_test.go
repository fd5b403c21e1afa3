package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplatform/brforms/pkg/validator"
)

func TestIsCPF(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"111.444.777-35", true},
		{"11144477735", true},
		{"123.456.789-09", true},
		{"111.444.777-36", false},
		{"111.111.111-11", false},
		{"000.000.000-00", false},
		{"1114447773", false},
		{"111444777350", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsCPF(tt.in))
		})
	}
}

func TestIsCNPJ(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"11.222.333/0001-81", true},
		{"11222333000181", true},
		{"11.222.333/0001-82", false},
		{"11.111.111/1111-11", false},
		{"11.222.333/0001", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsCNPJ(tt.in))
		})
	}
}

func TestIsTelefone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"(99) 99999-9999", true},
		{"(11) 3333-4444", true},
		{"21987654321", true},
		{"(00) 99999-9999", false},
		{"(23) 99999-9999", false},
		{"(20) 99999-9999", false},
		{"(10) 99999-9999", false},
		{"(11) 9999-999", false},
		{"(11) 99999-99999", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsTelefone(tt.in))
		})
	}
}

func TestValidDDDs(t *testing.T) {
	codes := validator.ValidDDDs()
	require.Len(t, codes, 67)
	assert.Equal(t, "11", codes[0])
	assert.Equal(t, "99", codes[len(codes)-1])
	assert.NotContains(t, codes, "20")
	assert.NotContains(t, codes, "23")
	assert.NotContains(t, codes, "52")
	assert.Contains(t, codes, "61")
}

func TestIsCEP(t *testing.T) {
	assert.True(t, validator.IsCEP("01310-100"))
	assert.True(t, validator.IsCEP("01310100"))
	assert.False(t, validator.IsCEP("0131-010"))
	assert.False(t, validator.IsCEP("013101000"))
}

func TestDocumentRules(t *testing.T) {
	tests := []struct {
		name    string
		rule    validator.Rule
		value   any
		wantMsg string
	}{
		{"cpf valid", validator.CPF(), "111.444.777-35", ""},
		{"cpf invalid", validator.CPF(), "111.444.777-36", "CPF deve ter um formato válido"},
		{"cpf empty passes", validator.CPF(), "", ""},
		{"cpf nil passes", validator.CPF(), nil, ""},
		{"cnpj valid", validator.CNPJ(), "11.222.333/0001-81", ""},
		{"cnpj invalid", validator.CNPJ(), "11.222.333/0001-80", "CNPJ deve ter um formato válido"},
		{"telefone valid", validator.Telefone(), "(99) 99999-9999", ""},
		{"telefone bad ddd", validator.Telefone(), "(23) 99999-9999", "Telefone deve ter um formato válido"},
		{"cep valid", validator.CEP(), "01310-100", ""},
		{"cep short", validator.CEP(), "0131", "CEP deve ter um formato válido"},
		{"cep numeric", validator.CEP(), 1310100, "CEP deve ter um formato válido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateField(tt.value, validator.Rules{tt.rule}, "doc")
			if tt.wantMsg == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Equal(t, "validation."+tt.rule.Name, err.TranslationKey)
		})
	}
}
