package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledgerworks/banking-ledger/internal/adapter/http/models"
	"github.com/ledgerworks/banking-ledger/internal/domain"
	"github.com/ledgerworks/banking-ledger/internal/logger"
)

// LedgerService composes store lookups with account entity mutations, one
// unit of work and a single commit per operation. Entity errors propagate
// unchanged; lookup misses wrap domain.ErrAccountNotFound naming the account
// (and, on transfers, which side was missing).
type LedgerService struct {
	store domain.Store
}

func NewLedgerService(store domain.Store) *LedgerService {
	return &LedgerService{store: store}
}

func (s *LedgerService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (*models.AccountResponse, error) {
	logger.Info("ledger service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service create account validation failed", err, nil)
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}

	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin unit of work: %w", err)
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	existing, err := uow.FindByNumber(ctx, accountNumber)
	if err != nil {
		logger.Error("ledger service create account lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return nil, err
	}
	if existing != nil {
		err := fmt.Errorf("account %q: %w", accountNumber, domain.ErrDuplicateAccount)
		logger.Error("ledger service create account rejected", err, nil)
		return nil, err
	}

	account, err := domain.NewAccount(accountNumber, req.Amount, currency)
	if err != nil {
		return nil, err
	}

	if err := uow.Add(ctx, account); err != nil {
		return nil, fmt.Errorf("stage account %q: %w", accountNumber, err)
	}
	if account.Balance.IsPositive() {
		opening := domain.NewTransaction(domain.TransactionTypeOpening, account.AccountNumber, "", account.Balance, account.Currency)
		if err := uow.RecordTransaction(ctx, opening); err != nil {
			return nil, fmt.Errorf("record opening entry for %q: %w", accountNumber, err)
		}
	}
	if err := uow.Commit(ctx); err != nil {
		logger.Error("ledger service create account commit failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return nil, err
	}

	logger.Info("ledger service create account success", logger.Fields{
		"accountId":     account.ID.String(),
		"accountNumber": account.AccountNumber,
		"currency":      account.Currency.String(),
	})

	resp := models.NewAccountResponse(account)
	return &resp, nil
}

func (s *LedgerService) GetAccount(ctx context.Context, accountNumber string) (*models.AccountResponse, error) {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin unit of work: %w", err)
	}

	account, err := uow.FindByNumber(ctx, strings.TrimSpace(accountNumber))
	if err != nil {
		logger.Error("ledger service get account failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return nil, err
	}
	if account == nil {
		return nil, nil
	}

	resp := models.NewAccountResponse(account)
	return &resp, nil
}

func (s *LedgerService) ListAccounts(ctx context.Context) ([]models.AccountResponse, error) {
	accounts, err := s.store.ListAll(ctx)
	if err != nil {
		logger.Error("ledger service list accounts failed", err, nil)
		return nil, err
	}

	out := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, models.NewAccountResponse(account))
	}
	return out, nil
}

func (s *LedgerService) Deposit(ctx context.Context, req models.BalanceRequest) (*models.BalanceResponse, error) {
	logger.Info("ledger service deposit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin unit of work: %w", err)
	}

	account, err := loadAccount(ctx, uow, req.AccountNumber)
	if err != nil {
		return nil, err
	}

	if err := account.Deposit(req.Amount); err != nil {
		logger.Error("ledger service deposit rejected", err, logger.Fields{
			"accountNumber": account.AccountNumber,
			"amount":        req.Amount.String(),
		})
		return nil, err
	}

	entry := domain.NewTransaction(domain.TransactionTypeDeposit, account.AccountNumber, "", req.Amount, account.Currency)
	if err := uow.RecordTransaction(ctx, entry); err != nil {
		return nil, fmt.Errorf("record deposit entry for %q: %w", account.AccountNumber, err)
	}
	if err := uow.Commit(ctx); err != nil {
		logger.Error("ledger service deposit commit failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return nil, err
	}

	logger.Info("ledger service deposit success", logger.Fields{
		"accountNumber": account.AccountNumber,
		"amount":        req.Amount.String(),
		"balance":       account.Balance.String(),
	})

	return &models.BalanceResponse{
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance.String(),
		Currency:      account.Currency.String(),
	}, nil
}

func (s *LedgerService) Withdraw(ctx context.Context, req models.BalanceRequest) (*models.BalanceResponse, error) {
	logger.Info("ledger service withdraw request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin unit of work: %w", err)
	}

	account, err := loadAccount(ctx, uow, req.AccountNumber)
	if err != nil {
		return nil, err
	}

	if err := account.Withdraw(req.Amount); err != nil {
		logger.Error("ledger service withdraw rejected", err, logger.Fields{
			"accountNumber": account.AccountNumber,
			"amount":        req.Amount.String(),
		})
		return nil, err
	}

	entry := domain.NewTransaction(domain.TransactionTypeWithdrawal, account.AccountNumber, "", req.Amount, account.Currency)
	if err := uow.RecordTransaction(ctx, entry); err != nil {
		return nil, fmt.Errorf("record withdrawal entry for %q: %w", account.AccountNumber, err)
	}
	if err := uow.Commit(ctx); err != nil {
		logger.Error("ledger service withdraw commit failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return nil, err
	}

	logger.Info("ledger service withdraw success", logger.Fields{
		"accountNumber": account.AccountNumber,
		"amount":        req.Amount.String(),
		"balance":       account.Balance.String(),
	})

	return &models.BalanceResponse{
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance.String(),
		Currency:      account.Currency.String(),
	}, nil
}

func (s *LedgerService) Transfer(ctx context.Context, req models.TransferRequest) (*models.TransferResponse, error) {
	logger.Info("ledger service transfer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	fromNumber := strings.TrimSpace(req.FromAccountNumber)
	toNumber := strings.TrimSpace(req.ToAccountNumber)
	if fromNumber == toNumber {
		return nil, fmt.Errorf("cannot transfer to the same account: %w", domain.ErrInvalidArgument)
	}

	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin unit of work: %w", err)
	}

	from, err := loadAccountNamed(ctx, uow, fromNumber, "source")
	if err != nil {
		return nil, err
	}
	to, err := loadAccountNamed(ctx, uow, toNumber, "destination")
	if err != nil {
		return nil, err
	}

	if from.Currency != to.Currency {
		err := fmt.Errorf("cannot transfer %s to %s: %w", from.Currency, to.Currency, domain.ErrCurrencyMismatch)
		logger.Error("ledger service transfer rejected", err, logger.Fields{
			"fromAccountNumber": fromNumber,
			"toAccountNumber":   toNumber,
		})
		return nil, err
	}

	// Withdraw first; a failure here means no deposit and no commit.
	if err := from.Withdraw(req.Amount); err != nil {
		logger.Error("ledger service transfer withdraw rejected", err, logger.Fields{
			"fromAccountNumber": fromNumber,
			"amount":            req.Amount.String(),
		})
		return nil, err
	}
	if err := to.Deposit(req.Amount); err != nil {
		return nil, err
	}

	out := domain.NewTransaction(domain.TransactionTypeTransferOut, from.AccountNumber, to.AccountNumber, req.Amount, from.Currency)
	in := domain.NewTransaction(domain.TransactionTypeTransferIn, to.AccountNumber, from.AccountNumber, req.Amount, to.Currency)
	if err := uow.RecordTransaction(ctx, out); err != nil {
		return nil, fmt.Errorf("record transfer entry for %q: %w", from.AccountNumber, err)
	}
	if err := uow.RecordTransaction(ctx, in); err != nil {
		return nil, fmt.Errorf("record transfer entry for %q: %w", to.AccountNumber, err)
	}

	if err := uow.Commit(ctx); err != nil {
		logger.Error("ledger service transfer commit failed", err, logger.Fields{
			"fromAccountNumber": fromNumber,
			"toAccountNumber":   toNumber,
		})
		return nil, err
	}

	logger.Info("ledger service transfer success", logger.Fields{
		"fromAccountNumber": from.AccountNumber,
		"toAccountNumber":   to.AccountNumber,
		"amount":            req.Amount.String(),
	})

	return &models.TransferResponse{
		FromAccountNumber: from.AccountNumber,
		ToAccountNumber:   to.AccountNumber,
		Amount:            req.Amount.String(),
		FromBalance:       from.Balance.String(),
		ToBalance:         to.Balance.String(),
	}, nil
}

func (s *LedgerService) ListTransactions(ctx context.Context, accountNumber string) ([]models.TransactionResponse, error) {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin unit of work: %w", err)
	}

	account, err := loadAccount(ctx, uow, accountNumber)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.ListTransactionsByAccount(ctx, account.AccountNumber)
	if err != nil {
		logger.Error("ledger service list transactions failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return nil, err
	}

	out := make([]models.TransactionResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, models.NewTransactionResponse(entry))
	}
	return out, nil
}

func loadAccount(ctx context.Context, uow domain.UnitOfWork, accountNumber string) (*domain.Account, error) {
	accountNumber = strings.TrimSpace(accountNumber)
	account, err := uow.FindByNumber(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("find account %q: %w", accountNumber, err)
	}
	if account == nil {
		return nil, fmt.Errorf("account %q: %w", accountNumber, domain.ErrAccountNotFound)
	}
	return account, nil
}

func loadAccountNamed(ctx context.Context, uow domain.UnitOfWork, accountNumber, side string) (*domain.Account, error) {
	account, err := uow.FindByNumber(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("find %s account %q: %w", side, accountNumber, err)
	}
	if account == nil {
		return nil, fmt.Errorf("%s account %q: %w", side, accountNumber, domain.ErrAccountNotFound)
	}
	return account, nil
}
