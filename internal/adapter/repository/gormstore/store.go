// Package gormstore implements the account store on GORM over Postgres.
//
// Each operation runs inside its own unit of work: accounts loaded through
// FindByNumber are tracked in a per-unit identity map so repeated lookups
// inside one operation hand back the same instance, and Commit flushes staged
// inserts plus the balances of every tracked account inside a single database
// transaction. Units of work are scoped to one operation and never shared, so
// concurrent requests cannot flush each other's in-flight changes. There is
// no per-account locking; two operations loading the same account can still
// interleave between load and commit (known limitation).
package gormstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/ledgerworks/banking-ledger/internal/domain"
)

const uniqueViolation = "23505"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Begin(_ context.Context) (domain.UnitOfWork, error) {
	return &unitOfWork{
		db:      s.db,
		tracked: make(map[string]*domain.Account),
	}, nil
}

func (s *Store) ListAll(ctx context.Context) ([]*domain.Account, error) {
	var models []accountModel
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	out := make([]*domain.Account, 0, len(models))
	for i := range models {
		out = append(out, toDomainAccount(&models[i]))
	}
	return out, nil
}

func (s *Store) ListTransactionsByAccount(ctx context.Context, accountNumber string) ([]*domain.Transaction, error) {
	var models []transactionModel
	err := s.db.WithContext(ctx).
		Where("account_number = ?", accountNumber).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions for account %q: %w", accountNumber, err)
	}

	out := make([]*domain.Transaction, 0, len(models))
	for i := range models {
		out = append(out, toDomainTransaction(&models[i]))
	}
	return out, nil
}

// unitOfWork is single-goroutine state for one operation, like a
// request-scoped ORM session.
type unitOfWork struct {
	db *gorm.DB

	tracked       map[string]*domain.Account
	staged        []*domain.Account
	stagedJournal []*domain.Transaction
}

func (u *unitOfWork) FindByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	if tracked, ok := u.tracked[accountNumber]; ok {
		return tracked, nil
	}

	var m accountModel
	err := u.db.WithContext(ctx).Where("account_number = ?", accountNumber).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find account %q: %w", accountNumber, err)
	}

	account := toDomainAccount(&m)
	u.tracked[accountNumber] = account
	return account, nil
}

func (u *unitOfWork) Add(_ context.Context, account *domain.Account) error {
	u.staged = append(u.staged, account)
	return nil
}

func (u *unitOfWork) RecordTransaction(_ context.Context, txn *domain.Transaction) error {
	u.stagedJournal = append(u.stagedJournal, txn)
	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, staged := range u.staged {
			m := toAccountModel(staged)
			if err := tx.Create(&m).Error; err != nil {
				return fmt.Errorf("insert account %q: %w", staged.AccountNumber, translateError(err))
			}
		}

		for _, tracked := range u.tracked {
			err := tx.Model(&accountModel{}).
				Where("account_number = ?", tracked.AccountNumber).
				Updates(map[string]any{
					"balance":    tracked.Balance,
					"updated_at": tracked.UpdatedAt,
				}).Error
			if err != nil {
				return fmt.Errorf("save account %q: %w", tracked.AccountNumber, err)
			}
		}

		for _, entry := range u.stagedJournal {
			m := toTransactionModel(entry)
			if err := tx.Create(&m).Error; err != nil {
				return fmt.Errorf("insert journal entry for %q: %w", entry.AccountNumber, err)
			}
		}

		return nil
	})

	// The unit of work ends whether or not the flush made it; a poisoned
	// identity map must not leak into later lookups.
	u.staged = nil
	u.stagedJournal = nil
	u.tracked = make(map[string]*domain.Account)

	return err
}

func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrDuplicateAccount
	}
	return err
}
