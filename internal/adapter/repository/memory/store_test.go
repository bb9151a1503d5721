package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerworks/banking-ledger/internal/adapter/repository/memory"
	"github.com/ledgerworks/banking-ledger/internal/domain"
)

func newAccount(t *testing.T, number string, balance int64) *domain.Account {
	t.Helper()
	account, err := domain.NewAccount(number, decimal.NewFromInt(balance), domain.CurrencyUSD)
	require.NoError(t, err)
	return account
}

func begin(t *testing.T, store *memory.Store) domain.UnitOfWork {
	t.Helper()
	uow, err := store.Begin(context.Background())
	require.NoError(t, err)
	return uow
}

func seedAccount(t *testing.T, store *memory.Store, number string, balance int64) {
	t.Helper()
	uow := begin(t, store)
	require.NoError(t, uow.Add(context.Background(), newAccount(t, number, balance)))
	require.NoError(t, uow.Commit(context.Background()))
}

func TestAddIsNotVisibleBeforeCommit(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	uow := begin(t, store)
	require.NoError(t, uow.Add(ctx, newAccount(t, "A1", 100)))

	other := begin(t, store)
	found, err := other.FindByNumber(ctx, "A1")
	require.NoError(t, err)
	assert.Nil(t, found)

	require.NoError(t, uow.Commit(ctx))

	found, err = begin(t, store).FindByNumber(ctx, "A1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.Balance.Equal(decimal.NewFromInt(100)))
}

func TestMutationIsNotVisibleBeforeCommit(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seedAccount(t, store, "A1", 100)

	uow := begin(t, store)
	loaded, err := uow.FindByNumber(ctx, "A1")
	require.NoError(t, err)
	require.NoError(t, loaded.Deposit(decimal.NewFromInt(50)))

	// ListAll reads committed state, so the in-flight deposit is invisible.
	accounts, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(100)))

	require.NoError(t, uow.Commit(ctx))

	reloaded, err := begin(t, store).FindByNumber(ctx, "A1")
	require.NoError(t, err)
	assert.True(t, reloaded.Balance.Equal(decimal.NewFromInt(150)))
}

func TestRepeatedFindReturnsSameTrackedInstance(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seedAccount(t, store, "A1", 100)

	uow := begin(t, store)
	first, err := uow.FindByNumber(ctx, "A1")
	require.NoError(t, err)
	second, err := uow.FindByNumber(ctx, "A1")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestOverlappingUnitsOfWorkAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seedAccount(t, store, "A1", 100)
	seedAccount(t, store, "A2", 0)

	// First operation loads A1 and holds it across the second operation's
	// whole lifetime.
	uowA := begin(t, store)
	a1, err := uowA.FindByNumber(ctx, "A1")
	require.NoError(t, err)

	// Second operation deposits to A2 and commits while the first is still
	// in flight.
	uowB := begin(t, store)
	a2, err := uowB.FindByNumber(ctx, "A2")
	require.NoError(t, err)
	require.NoError(t, a2.Deposit(decimal.NewFromInt(10)))
	require.NoError(t, uowB.Commit(ctx))

	// The first operation's tracked account must still flush: its withdrawal
	// and the matching journal entry land together.
	require.NoError(t, a1.Withdraw(decimal.NewFromInt(50)))
	entry := domain.NewTransaction(domain.TransactionTypeWithdrawal, "A1", "", decimal.NewFromInt(50), domain.CurrencyUSD)
	require.NoError(t, uowA.RecordTransaction(ctx, entry))
	require.NoError(t, uowA.Commit(ctx))

	reloaded, err := begin(t, store).FindByNumber(ctx, "A1")
	require.NoError(t, err)
	assert.True(t, reloaded.Balance.Equal(decimal.NewFromInt(50)), "balance should be 50, got %s", reloaded.Balance)

	entries, err := store.ListTransactionsByAccount(ctx, "A1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.TransactionTypeWithdrawal, entries[0].Type)
}

func TestCommitRejectsDuplicateAccountNumber(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seedAccount(t, store, "A1", 100)

	uow := begin(t, store)
	require.NoError(t, uow.Add(ctx, newAccount(t, "A1", 5)))
	err := uow.Commit(ctx)
	require.ErrorIs(t, err, domain.ErrDuplicateAccount)

	existing, err := begin(t, store).FindByNumber(ctx, "A1")
	require.NoError(t, err)
	assert.True(t, existing.Balance.Equal(decimal.NewFromInt(100)), "existing account must be unchanged")
	assert.Equal(t, 1, store.Commits())
}

func TestListAllPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	uow := begin(t, store)
	for _, number := range []string{"A3", "A1", "A2"} {
		require.NoError(t, uow.Add(ctx, newAccount(t, number, 10)))
	}
	require.NoError(t, uow.Commit(ctx))

	accounts, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "A3", accounts[0].AccountNumber)
	assert.Equal(t, "A1", accounts[1].AccountNumber)
	assert.Equal(t, "A2", accounts[2].AccountNumber)
}

func TestJournalPersistsOnCommit(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	uow := begin(t, store)
	require.NoError(t, uow.Add(ctx, newAccount(t, "A1", 100)))
	entry := domain.NewTransaction(domain.TransactionTypeOpening, "A1", "", decimal.NewFromInt(100), domain.CurrencyUSD)
	require.NoError(t, uow.RecordTransaction(ctx, entry))
	require.NoError(t, uow.Commit(ctx))

	entries, err := store.ListTransactionsByAccount(ctx, "A1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.TransactionTypeOpening, entries[0].Type)
}

func TestFailNextCommit(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	uow := begin(t, store)
	require.NoError(t, uow.Add(ctx, newAccount(t, "A1", 100)))

	boom := errors.New("connection lost")
	store.FailNextCommit(boom)
	require.ErrorIs(t, uow.Commit(ctx), boom)
	assert.Equal(t, 0, store.Commits())
}
