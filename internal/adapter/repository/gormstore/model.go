package gormstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerworks/banking-ledger/internal/domain"
)

type accountModel struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	AccountNumber string          `gorm:"column:account_number;uniqueIndex"`
	Balance       decimal.Decimal `gorm:"column:balance;type:numeric(20,4)"`
	Currency      string          `gorm:"column:currency;size:3"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (accountModel) TableName() string { return "accounts" }

type transactionModel struct {
	ID                 uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Type               string          `gorm:"column:type"`
	AccountNumber      string          `gorm:"column:account_number;index"`
	CounterpartyNumber string          `gorm:"column:counterparty_number"`
	Amount             decimal.Decimal `gorm:"column:amount;type:numeric(20,4)"`
	Currency           string          `gorm:"column:currency;size:3"`
	CreatedAt          time.Time       `gorm:"column:created_at"`
}

func (transactionModel) TableName() string { return "transactions" }

func toAccountModel(a *domain.Account) accountModel {
	return accountModel{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
		Currency:      a.Currency.String(),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toDomainAccount(m *accountModel) *domain.Account {
	return &domain.Account{
		ID:            m.ID,
		AccountNumber: m.AccountNumber,
		Balance:       m.Balance,
		Currency:      domain.Currency(m.Currency),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toTransactionModel(t *domain.Transaction) transactionModel {
	return transactionModel{
		ID:                 t.ID,
		Type:               string(t.Type),
		AccountNumber:      t.AccountNumber,
		CounterpartyNumber: t.CounterpartyNumber,
		Amount:             t.Amount,
		Currency:           t.Currency.String(),
		CreatedAt:          t.CreatedAt,
	}
}

func toDomainTransaction(m *transactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:                 m.ID,
		Type:               domain.TransactionType(m.Type),
		AccountNumber:      m.AccountNumber,
		CounterpartyNumber: m.CounterpartyNumber,
		Amount:             m.Amount,
		Currency:           domain.Currency(m.Currency),
		CreatedAt:          m.CreatedAt,
	}
}
