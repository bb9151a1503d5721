package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	FromAccountNumber string          `json:"fromAccountNumber"`
	ToAccountNumber   string          `json:"toAccountNumber"`
	Amount            decimal.Decimal `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.FromAccountNumber) == "" {
		errs = append(errs, "fromAccountNumber is required")
	}
	if strings.TrimSpace(r.ToAccountNumber) == "" {
		errs = append(errs, "toAccountNumber is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type TransferResponse struct {
	FromAccountNumber string `json:"fromAccountNumber"`
	ToAccountNumber   string `json:"toAccountNumber"`
	Amount            string `json:"amount"`
	FromBalance       string `json:"fromBalance"`
	ToBalance         string `json:"toBalance"`
}
