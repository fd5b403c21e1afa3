package validator

import (
	"fmt"
	"math"
)

// MessageFunc renders the failure message of a rule from its parameter.
type MessageFunc func(param any) string

// Literal returns a MessageFunc that ignores the parameter.
func Literal(msg string) MessageFunc {
	return func(any) string { return msg }
}

const (
	msgRequired = "Este campo é obrigatório"
	msgCustom   = "Valor inválido"
)

func builtinMessages() map[string]MessageFunc {
	return map[string]MessageFunc{
		RuleRequired: Literal(msgRequired),
		RuleEmail:    Literal("Email deve ter um formato válido"),
		RuleCPF:      Literal("CPF deve ter um formato válido"),
		RuleCNPJ:     Literal("CNPJ deve ter um formato válido"),
		RuleTelefone: Literal("Telefone deve ter um formato válido"),
		RuleCEP:      Literal("CEP deve ter um formato válido"),
		RuleMinLength: func(p any) string {
			return fmt.Sprintf("Deve ter pelo menos %d caracteres", toInt(p, 0))
		},
		RuleMaxLength: func(p any) string {
			return fmt.Sprintf("Deve ter no máximo %d caracteres", toInt(p, 0))
		},
		RuleMin: func(p any) string {
			return "Valor mínimo é " + formatNumber(paramFloat(p, 0))
		},
		RuleMax: func(p any) string {
			return "Valor máximo é " + formatNumber(paramFloat(p, math.MaxFloat64))
		},
		RulePattern: Literal("Formato inválido"),
		RuleCustom:  Literal(msgCustom),
		RuleURL:     Literal("URL deve ter um formato válido"),
		RuleNumber:  Literal("Deve ser um número válido"),
		RuleInteger: Literal("Deve ser um número inteiro"),
		RuleDate:    Literal("Data deve ter um formato válido"),
		RuleDateAfter: func(p any) string {
			return "Data deve ser posterior a " + formatDateParam(p)
		},
		RuleDateBefore: func(p any) string {
			return "Data deve ser anterior a " + formatDateParam(p)
		},
		RuleAge: func(p any) string {
			return fmt.Sprintf("Idade mínima é %d anos", toInt(p, 0))
		},
	}
}

func formatDateParam(p any) string {
	if t, ok := parseDate(p); ok {
		return t.Format("02/01/2006")
	}
	return toString(p)
}
