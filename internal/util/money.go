package util

import (
	"strconv"
	"strings"
)

// ParseBRL parses a brazilian currency token: the "R$" marker is stripped and
// a decimal comma becomes a decimal point. "R$ 50,00" -> 50.0. The boolean is
// false when no number remains.
func ParseBRL(input string) (float64, bool) {
	s := strings.ReplaceAll(input, "R$", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSpace(s)
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// FormatBRL renders an amount with two decimals and the "R$" marker, the way
// replies and ledger rows show money.
func FormatBRL(value float64) string {
	return "R$ " + strconv.FormatFloat(value, 'f', 2, 64)
}
