package models

import (
	"time"

	"github.com/ledgerworks/banking-ledger/internal/domain"
)

type TransactionResponse struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	AccountNumber      string `json:"accountNumber"`
	CounterpartyNumber string `json:"counterpartyNumber,omitempty"`
	Amount             string `json:"amount"`
	Currency           string `json:"currency"`
	CreatedAt          string `json:"createdAt"`
}

func NewTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                 txn.ID.String(),
		Type:               string(txn.Type),
		AccountNumber:      txn.AccountNumber,
		CounterpartyNumber: txn.CounterpartyNumber,
		Amount:             txn.Amount.String(),
		Currency:           txn.Currency.String(),
		CreatedAt:          txn.CreatedAt.Format(time.RFC3339),
	}
}
