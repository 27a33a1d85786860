package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountRepository defines the interface for account state operations
// Accounts are seeded at start; there is no create or delete.
type AccountRepository interface {
	// List returns a snapshot of all accounts in insertion order
	List(ctx context.Context) []Account

	// GetByID retrieves an account by its ID
	GetByID(ctx context.Context, id string) (Account, bool)

	// UpdateBalance replaces only the balance of the matching account
	// Unknown IDs are ignored; the result reports whether an account matched
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) bool
}

// TransactionRepository defines the interface for transaction state operations
type TransactionRepository interface {
	// List returns a snapshot of all transactions, most recent first
	List(ctx context.Context) []Transaction

	// Upsert replaces the whole record with the same ID
	// Unknown IDs are ignored (never inserted); the result reports whether a record matched
	Upsert(ctx context.Context, tx Transaction) bool

	// Update applies fn to the record with the given ID under a single lock
	// Unknown IDs are ignored; the result reports whether a record matched
	Update(ctx context.Context, id string, fn func(tx *Transaction)) bool

	// Prepend inserts a transaction as the new head of the sequence
	Prepend(ctx context.Context, tx Transaction)

	// Count returns the number of transactions held
	Count(ctx context.Context) int
}

// ProfileRepository defines the interface for user profile operations
type ProfileRepository interface {
	// Get returns a copy of the current profile
	Get(ctx context.Context) UserProfile

	// UpdateField replaces exactly the named field
	// Unknown fields are ignored; the result reports whether the field is known
	UpdateField(ctx context.Context, field ProfileField, value string) bool
}
