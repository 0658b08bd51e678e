package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name        string
		monthStr    string
		expectError bool
	}{
		{name: "Mês válido", monthStr: "2026-02"},
		{name: "Mês com barra - deve falhar", monthStr: "02/2026", expectError: true},
		{name: "Mês treze - deve falhar", monthStr: "2026-13", expectError: true},
		{name: "Data completa - deve falhar", monthStr: "2026-02-01", expectError: true},
		{name: "Vazio - deve falhar", monthStr: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMonth(tt.monthStr)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNextMonth(t *testing.T) {
	tests := []struct {
		name     string
		monthStr string
		expected string
	}{
		{name: "Mês comum", monthStr: "2026-02", expected: "2026-03"},
		{name: "Virada de ano", monthStr: "2025-12", expected: "2026-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := NextMonth(tt.monthStr)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, next)
		})
	}
}

func TestMonthAfter(t *testing.T) {
	after, err := MonthAfter("2026-03", "2026-02")
	assert.NoError(t, err)
	assert.True(t, after)

	after, err = MonthAfter("2025-12", "2026-01")
	assert.NoError(t, err)
	assert.False(t, after)

	_, err = MonthAfter("dezembro", "2026-01")
	assert.Error(t, err)
}

func TestNormalizeRgCpf(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expected    string
		expectError bool
	}{
		{name: "CPF formatado", raw: "123.456.789-01", expected: "12345678901"},
		{name: "RG com prefixo de estado", raw: "MG-12.345.678", expected: "12345678"},
		{name: "Poucos dígitos - deve falhar", raw: "123", expectError: true},
		{name: "Dígitos demais - deve falhar", raw: "123456789012", expectError: true},
		{name: "Sem dígitos - deve falhar", raw: "sem documento", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digits, err := NormalizeRgCpf(tt.raw)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrDocumentoInvalido)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, digits)
		})
	}
}
