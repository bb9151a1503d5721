package service_interfaces

import (
	"context"

	"github.com/ledgerworks/banking-ledger/internal/adapter/http/models"
)

// LedgerService orchestrates account creation and balance-changing
// operations. GetAccount returns (nil, nil) when the account does not exist;
// every other lookup miss is an error.
type LedgerService interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (*models.AccountResponse, error)
	GetAccount(ctx context.Context, accountNumber string) (*models.AccountResponse, error)
	ListAccounts(ctx context.Context) ([]models.AccountResponse, error)
	Deposit(ctx context.Context, req models.BalanceRequest) (*models.BalanceResponse, error)
	Withdraw(ctx context.Context, req models.BalanceRequest) (*models.BalanceResponse, error)
	Transfer(ctx context.Context, req models.TransferRequest) (*models.TransferResponse, error)
	ListTransactions(ctx context.Context, accountNumber string) ([]models.TransactionResponse, error)
}
