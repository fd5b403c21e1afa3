// Package formatter rewrites Brazilian field values for display while the user
// types. Formatters are cosmetic: they never reject input and never report
// validity. Use pkg/validator for that.
//
// Each formatter strips everything but digits, caps the digit count and lays
// the remaining digits over a mask. Partial input gets a partial mask, so a
// field can be reformatted on every keystroke:
//
//	formatter.CPF("1234")        // "123.4"
//	formatter.CPF("12345678909") // "123.456.789-09"
//	formatter.Telefone("11987654321") // "(11) 98765-4321"
//	formatter.Currency("12345")  // "R$ 123,45"
//
// Formatters assume raw or partially typed input; applying one to its own
// output is not guaranteed to be stable for every value.
//
// Formatters are looked up by the name used in form schemas:
//
//	if fn, ok := formatter.Lookup("cep"); ok {
//		value = fn(value)
//	}
package formatter
