package quote

import "strings"

// NormalizeTicker maps common ticker spellings to the format Yahoo
// expects (index tickers use a ^ prefix, e.g. $VIX -> ^VIX). Strings
// that don't look like tickers are passed through untouched and left
// for the provider to reject.
func NormalizeTicker(symbol string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return symbol
	}

	if len(symbol) > 15 || strings.Contains(symbol, " ") {
		return symbol
	}

	if symbol == "VIX" || symbol == "$VIX" {
		return "^VIX"
	}
	if strings.HasPrefix(symbol, "$") {
		return "^" + symbol[1:]
	}
	return symbol
}
