package validators

import "strings"

// IsCpfCnpjValid aceita CPF (11 dígitos) ou CNPJ (14 dígitos),
// com ou sem máscara. Não valida dígito verificador, apenas
// formato — o cadastro aceita documentos estrangeiros mascarados.
func IsCpfCnpjValid(doc string) bool {
	digits := onlyDigits(doc)

	if len(digits) != 11 && len(digits) != 14 {
		return false
	}

	// rejeita sequências repetidas (000..., 111...)
	first := digits[0]
	for i := 1; i < len(digits); i++ {
		if digits[i] != first {
			return true
		}
	}
	return false
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
