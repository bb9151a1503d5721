package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a balance-holding ledger record. The balance can only change
// through Deposit and Withdraw, which keep it non-negative; the account
// number and currency are fixed at creation.
type Account struct {
	ID            uuid.UUID
	AccountNumber string
	Balance       decimal.Decimal
	Currency      Currency
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewAccount builds an account with a fresh ID. The account number must be
// non-blank, the initial balance non-negative and the currency supported.
func NewAccount(accountNumber string, initialBalance decimal.Decimal, currency Currency) (*Account, error) {
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return nil, fmt.Errorf("account number is required: %w", ErrInvalidArgument)
	}
	if initialBalance.IsNegative() {
		return nil, fmt.Errorf("initial balance cannot be negative: %w", ErrInvalidArgument)
	}
	if _, ok := supportedCurrencies[currency]; !ok {
		return nil, fmt.Errorf("currency %q is not supported: %w", currency, ErrInvalidArgument)
	}

	now := time.Now().UTC()
	return &Account{
		ID:            uuid.New(),
		AccountNumber: accountNumber,
		Balance:       initialBalance,
		Currency:      currency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Deposit adds amount to the balance. The amount must be strictly positive.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	a.Balance = a.Balance.Add(amount)
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// Withdraw removes amount from the balance. The amount must be strictly
// positive and covered by the current balance; both checks run before any
// mutation so a failed withdrawal leaves the balance untouched.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	a.UpdatedAt = time.Now().UTC()
	return nil
}
