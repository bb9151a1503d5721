package domain

import "errors"

var (
	// ErrInvalidArgument is returned when an account cannot be constructed
	// from the supplied input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidAmount is returned when a deposit or withdrawal amount is
	// not strictly positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound is returned when a required account lookup misses.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccount is returned when an account number is already taken.
	ErrDuplicateAccount = errors.New("account number already exists")

	// ErrCurrencyMismatch is returned when a transfer spans two currencies.
	ErrCurrencyMismatch = errors.New("accounts have different currencies")
)
