package formatter

import "strings"

const (
	cpfMask      = "###.###.###-##"
	cnpjMask     = "##.###.###/####-##"
	landlineMask = "(##) ####-####"
	mobileMask   = "(##) #####-####"
	cepMask      = "#####-###"
)

const maskPlaceholder = '#'

// Func rewrites a field value.
type Func func(string) string

// Digits drops every non-digit character.
func Digits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// Limit keeps at most n leading bytes. Use it after Digits.
func Limit(n int) Func {
	return func(s string) string {
		if len(s) > n {
			return s[:n]
		}
		return s
	}
}

// Mask lays digits over pattern, where '#' takes the next digit and any other
// character is copied. Output stops when digits run out, so literals after
// the last typed digit are not emitted.
func Mask(pattern string) Func {
	return func(digits string) string {
		var b strings.Builder
		b.Grow(len(pattern))

		i := 0
		for _, c := range pattern {
			if i >= len(digits) {
				break
			}
			if c == maskPlaceholder {
				b.WriteByte(digits[i])
				i++
				continue
			}
			b.WriteRune(c)
		}
		return b.String()
	}
}

var (
	cpf  = Compose(Digits, Limit(11), Mask(cpfMask))
	cnpj = Compose(Digits, Limit(14), Mask(cnpjMask))
	cep  = Compose(Digits, Limit(8), Mask(cepMask))
)

// CPF formats up to 11 digits as ###.###.###-##.
func CPF(s string) string { return cpf(s) }

// CNPJ formats up to 14 digits as ##.###.###/####-##.
func CNPJ(s string) string { return cnpj(s) }

// CEP formats up to 8 digits as #####-###.
func CEP(s string) string { return cep(s) }

// Telefone formats up to 11 digits. Ten digits or fewer use the landline
// layout (##) ####-####; eleven switch to the mobile layout (##) #####-####.
func Telefone(s string) string {
	digits := Apply(s, Digits, Limit(11))
	if len(digits) == 11 {
		return Mask(mobileMask)(digits)
	}
	return Mask(landlineMask)(digits)
}
