package utils

import (
	"errors"
	"strings"
	"unicode"
)

var ErrDocumentoInvalido = errors.New("documento de identificação inválido")

// NormalizeRgCpf remove a formatação de um RG ou CPF e valida o tamanho.
// O resultado deve ter entre 7 e 11 dígitos: 11 dígitos indicam CPF,
// 7 a 10 dígitos indicam RG.
func NormalizeRgCpf(raw string) (string, error) {
	var sb strings.Builder

	for _, r := range raw {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}

	digits := sb.String()
	if len(digits) < 7 || len(digits) > 11 {
		return "", ErrDocumentoInvalido
	}

	return digits, nil
}

// IsCPF informa se um documento já normalizado é um CPF
func IsCPF(digits string) bool {
	return len(digits) == 11
}
