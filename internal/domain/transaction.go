package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeOpening     TransactionType = "OPENING"
	TransactionTypeDeposit     TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal  TransactionType = "WITHDRAWAL"
	TransactionTypeTransferOut TransactionType = "TRANSFER_OUT"
	TransactionTypeTransferIn  TransactionType = "TRANSFER_IN"
)

// Transaction is a journal entry describing one committed balance change.
// CounterpartyNumber is only set on transfer entries.
type Transaction struct {
	ID                 uuid.UUID
	Type               TransactionType
	AccountNumber      string
	CounterpartyNumber string
	Amount             decimal.Decimal
	Currency           Currency
	CreatedAt          time.Time
}

// NewTransaction builds a journal entry with a fresh ID.
func NewTransaction(txnType TransactionType, accountNumber, counterpartyNumber string, amount decimal.Decimal, currency Currency) *Transaction {
	return &Transaction{
		ID:                 uuid.New(),
		Type:               txnType,
		AccountNumber:      accountNumber,
		CounterpartyNumber: counterpartyNumber,
		Amount:             amount,
		Currency:           currency,
		CreatedAt:          time.Now().UTC(),
	}
}
