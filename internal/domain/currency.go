package domain

import (
	"fmt"
	"strings"
)

// Currency is an ISO 4217 alphabetic currency code.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyNGN Currency = "NGN"
)

var supportedCurrencies = map[Currency]struct{}{
	CurrencyUSD: {},
	CurrencyEUR: {},
	CurrencyGBP: {},
	CurrencyNGN: {},
}

// ParseCurrency normalizes raw to an upper-case code and rejects codes
// outside the supported set.
func ParseCurrency(raw string) (Currency, error) {
	code := Currency(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := supportedCurrencies[code]; !ok {
		return "", fmt.Errorf("currency must be one of USD, EUR, GBP, NGN: %w", ErrInvalidArgument)
	}
	return code, nil
}

func (c Currency) String() string {
	return string(c)
}
