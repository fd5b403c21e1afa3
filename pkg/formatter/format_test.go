package formatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eduplatform/brforms/pkg/formatter"
)

func TestCPF(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"raw digits", "12345678909", "123.456.789-09"},
		{"partial after first group", "1234", "123.4"},
		{"exact first group", "123", "123"},
		{"already formatted", "123.456.789-09", "123.456.789-09"},
		{"extra digits are dropped", "123456789091234", "123.456.789-09"},
		{"letters are dropped", "12a3", "123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatter.CPF(tt.input))
		})
	}
}

func TestCNPJ(t *testing.T) {
	assert.Equal(t, "11.222.333/0001-81", formatter.CNPJ("11222333000181"))
	assert.Equal(t, "11.222.333/0", formatter.CNPJ("112223330"))
	assert.Equal(t, "11", formatter.CNPJ("11"))
}

func TestTelefone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mobile", "11987654321", "(11) 98765-4321"},
		{"landline", "1133334444", "(11) 3333-4444"},
		{"partial area code", "1", "(1"},
		{"area code only", "11", "(11"},
		{"partial number", "119876", "(11) 9876"},
		{"reformatted on growth", "(11) 9876-54321", "(11) 98765-4321"},
		{"capped at eleven digits", "119876543210", "(11) 98765-4321"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatter.Telefone(tt.input))
		})
	}
}

func TestCEP(t *testing.T) {
	assert.Equal(t, "01310-100", formatter.CEP("01310100"))
	assert.Equal(t, "01310-1", formatter.CEP("013101"))
	assert.Equal(t, "01310", formatter.CEP("01310"))
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"cents", "5", "R$\u00a00,05"},
		{"reais", "12345", "R$\u00a0123,45"},
		{"grouping", "12345678", "R$\u00a0123.456,78"},
		{"leading zeros", "000150", "R$\u00a01,50"},
		{"all zeros", "00", "R$\u00a00,00"},
		{"reformats own output", "R$\u00a012.345,67", "R$\u00a012.345,67"},
		{"no digits", "R$", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatter.Currency(tt.input))
		})
	}
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"cep", "cnpj", "cpf", "currency", "telefone"}, formatter.Names())

	fn, ok := formatter.Lookup("cep")
	assert.True(t, ok)
	assert.Equal(t, "01310-100", fn("01310100"))

	_, ok = formatter.Lookup("rg")
	assert.False(t, ok)

	assert.Equal(t, "123.456.789-09", formatter.Format("cpf", "12345678909"))
	assert.Equal(t, "abc", formatter.Format("rg", "abc"))
}

func TestCompose(t *testing.T) {
	plate := formatter.Compose(formatter.Digits, formatter.Limit(4), formatter.Mask("##-##"))
	assert.Equal(t, "12-34", plate("a1b2c3d4e5"))
	assert.Equal(t, "12", formatter.Apply("1a2", formatter.Digits))
}
