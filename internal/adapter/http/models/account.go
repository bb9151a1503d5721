package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerworks/banking-ledger/internal/domain"
)

type CreateAccountRequest struct {
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}

	if strings.TrimSpace(r.Currency) == "" {
		errs = append(errs, "currency is required")
	}

	if r.Amount.IsNegative() {
		errs = append(errs, "amount cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type AccountResponse struct {
	ID            string `json:"id"`
	AccountNumber string `json:"accountNumber"`
	Balance       string `json:"balance"`
	Currency      string `json:"currency"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

func NewAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:            account.ID.String(),
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance.String(),
		Currency:      account.Currency.String(),
		CreatedAt:     account.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     account.UpdatedAt.Format(time.RFC3339),
	}
}
