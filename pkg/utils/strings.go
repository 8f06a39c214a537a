package utils

import "strings"

// DigitsOnly remove tudo que não for dígito de uma string,
// usado na comparação numérica de datas parciais na busca livre
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
