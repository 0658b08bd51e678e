package utils

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseMonth valida um token de mês no formato YYYY-MM
func ParseMonth(monthStr string) (time.Time, error) {
	month, err := time.Parse(monthLayout, monthStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("mês inválido %q, esperado formato YYYY-MM: %w", monthStr, err)
	}

	return month, nil
}

// NextMonth retorna o token do mês imediatamente seguinte
func NextMonth(monthStr string) (string, error) {
	month, err := ParseMonth(monthStr)
	if err != nil {
		return "", err
	}

	return month.AddDate(0, 1, 0).Format(monthLayout), nil
}

// MonthAfter informa se a é estritamente posterior a b.
// Tokens YYYY-MM ordenam lexicograficamente, mas validamos antes de comparar.
func MonthAfter(a, b string) (bool, error) {
	if _, err := ParseMonth(a); err != nil {
		return false, err
	}

	if _, err := ParseMonth(b); err != nil {
		return false, err
	}

	return a > b, nil
}

// CurrentMonth retorna o token do mês corrente
func CurrentMonth() string {
	return time.Now().Format(monthLayout)
}
