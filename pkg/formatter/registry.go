package formatter

import "slices"

// Format names accepted by Lookup.
const (
	NameCPF      = "cpf"
	NameCNPJ     = "cnpj"
	NameTelefone = "telefone"
	NameCEP      = "cep"
	NameCurrency = "currency"
)

var registry = map[string]Func{
	NameCPF:      CPF,
	NameCNPJ:     CNPJ,
	NameTelefone: Telefone,
	NameCEP:      CEP,
	NameCurrency: Currency,
}

// Lookup returns the formatter registered under name.
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Format rewrites value with the named formatter. Unknown names return value
// unchanged.
func Format(name, value string) string {
	if fn, ok := registry[name]; ok {
		return fn(value)
	}
	return value
}

// Names returns the formatter names in ascending order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
