package domain

import "context"

// Store is the persistence collaborator holding accounts and their journal.
//
// Writes go through a UnitOfWork obtained from Begin: each operation gets its
// own unit of work, so overlapping requests cannot see or flush each other's
// in-flight changes. ListAll and ListTransactionsByAccount read committed
// state directly.
type Store interface {
	// Begin opens a fresh unit of work for one operation. The returned value
	// is not safe for concurrent use; a unit of work that is never committed
	// leaves the store as it was.
	Begin(ctx context.Context) (UnitOfWork, error)

	// ListAll returns every committed account in store iteration order.
	ListAll(ctx context.Context) ([]*Account, error)

	// ListTransactionsByAccount returns the committed journal entries for one
	// account, oldest first.
	ListTransactionsByAccount(ctx context.Context, accountNumber string) ([]*Transaction, error)
}

// UnitOfWork scopes loads and staged writes to a single operation.
//
// Accounts returned by FindByNumber stay tracked by the unit of work; Add and
// RecordTransaction stage new rows. Commit is the single durability point: it
// persists staged rows and the balances of tracked accounts in one shot and
// ends the unit of work. Nothing written before Commit is durable.
type UnitOfWork interface {
	// FindByNumber returns the account with the given number, or (nil, nil)
	// when no such account exists. Absence is a normal outcome, not an error.
	// Repeated lookups of one number return the same tracked instance.
	FindByNumber(ctx context.Context, accountNumber string) (*Account, error)

	// Add stages a new account for persistence by Commit.
	Add(ctx context.Context, account *Account) error

	// RecordTransaction stages a journal entry for persistence by Commit.
	RecordTransaction(ctx context.Context, txn *Transaction) error

	// Commit durably persists staged accounts, staged journal entries and the
	// current balances of tracked accounts. A staged account whose number
	// collides with an existing one fails the whole commit with
	// ErrDuplicateAccount; any other failure is a store-level error.
	Commit(ctx context.Context) error
}
