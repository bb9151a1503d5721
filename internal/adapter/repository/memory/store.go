// Package memory provides a map-backed Store used by tests and local runs.
// It mirrors the GORM store's unit-of-work semantics: each Begin opens an
// isolated unit of work over committed state, loaded accounts are tracked
// copies, and nothing becomes visible to later lookups until Commit.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ledgerworks/banking-ledger/internal/domain"
)

type Store struct {
	mu sync.Mutex

	accounts map[string]*domain.Account
	order    []string
	journal  map[string][]*domain.Transaction

	commits   int
	commitErr error
}

func New() *Store {
	return &Store{
		accounts: make(map[string]*domain.Account),
		journal:  make(map[string][]*domain.Transaction),
	}
}

func (s *Store) Begin(_ context.Context) (domain.UnitOfWork, error) {
	return &unitOfWork{
		store:   s,
		tracked: make(map[string]*domain.Account),
	}, nil
}

func (s *Store) ListAll(_ context.Context) ([]*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Account, 0, len(s.order))
	for _, number := range s.order {
		copied := *s.accounts[number]
		out = append(out, &copied)
	}
	return out, nil
}

func (s *Store) ListTransactionsByAccount(_ context.Context, accountNumber string) ([]*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.journal[accountNumber]
	out := make([]*domain.Transaction, 0, len(entries))
	for _, entry := range entries {
		copied := *entry
		out = append(out, &copied)
	}
	return out, nil
}

// Commits reports how many commits have succeeded. Tests use it to assert
// that failed operations never reach the durability point.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// FailNextCommit makes the next Commit return err without persisting.
func (s *Store) FailNextCommit(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitErr = err
}

// unitOfWork holds uncommitted state for one operation. Tracked accounts and
// staged rows belong to this unit alone; only Commit touches the shared
// committed maps.
type unitOfWork struct {
	store *Store

	tracked       map[string]*domain.Account
	staged        []*domain.Account
	stagedJournal []*domain.Transaction
}

// FindByNumber returns a tracked copy of the committed account, so in-memory
// mutations stay invisible until Commit. Repeated lookups within the unit of
// work return the same instance.
func (u *unitOfWork) FindByNumber(_ context.Context, accountNumber string) (*domain.Account, error) {
	if tracked, ok := u.tracked[accountNumber]; ok {
		return tracked, nil
	}

	u.store.mu.Lock()
	committed, ok := u.store.accounts[accountNumber]
	if !ok {
		u.store.mu.Unlock()
		return nil, nil
	}
	copied := *committed
	u.store.mu.Unlock()

	u.tracked[accountNumber] = &copied
	return &copied, nil
}

func (u *unitOfWork) Add(_ context.Context, account *domain.Account) error {
	u.staged = append(u.staged, account)
	return nil
}

func (u *unitOfWork) RecordTransaction(_ context.Context, txn *domain.Transaction) error {
	u.stagedJournal = append(u.stagedJournal, txn)
	return nil
}

func (u *unitOfWork) Commit(_ context.Context) error {
	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.commitErr != nil {
		err := s.commitErr
		s.commitErr = nil
		u.reset()
		return err
	}

	for _, staged := range u.staged {
		if _, exists := s.accounts[staged.AccountNumber]; exists {
			u.reset()
			return fmt.Errorf("account %q: %w", staged.AccountNumber, domain.ErrDuplicateAccount)
		}
	}

	for _, staged := range u.staged {
		copied := *staged
		s.accounts[staged.AccountNumber] = &copied
		s.order = append(s.order, staged.AccountNumber)
	}
	for number, tracked := range u.tracked {
		copied := *tracked
		s.accounts[number] = &copied
	}
	for _, entry := range u.stagedJournal {
		copied := *entry
		s.journal[entry.AccountNumber] = append(s.journal[entry.AccountNumber], &copied)
	}

	u.reset()
	s.commits++

	return nil
}

func (u *unitOfWork) reset() {
	u.staged = nil
	u.stagedJournal = nil
	u.tracked = make(map[string]*domain.Account)
}
