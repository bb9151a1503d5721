package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// BalanceRequest carries a deposit or withdrawal. The amount sign is checked
// by the account entity, not here, so the domain error surfaces unchanged.
type BalanceRequest struct {
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r BalanceRequest) Validate() error {
	if strings.TrimSpace(r.AccountNumber) == "" {
		return errors.New("accountNumber is required")
	}
	return nil
}

type BalanceResponse struct {
	AccountNumber string `json:"accountNumber"`
	Balance       string `json:"balance"`
	Currency      string `json:"currency"`
}
