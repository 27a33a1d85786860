package memory

import (
	"fmt"
	"sync"

	"github.com/simaogato/bankdash-backend/internal/domain"
)

// Fixtures is the initial state injected into a Store
type Fixtures struct {
	Accounts     []domain.Account
	Transactions []domain.Transaction // most recent first
	Profile      domain.UserProfile
}

// Store is the single owner of accounts, transactions and the user profile.
// State lives for the lifetime of the process. All mutations are serialized
// so readers always observe a fully applied snapshot.
type Store struct {
	mu           sync.RWMutex
	accounts     []domain.Account
	transactions []domain.Transaction
	profile      domain.UserProfile
}

// NewStore creates a new Store from the given fixtures
// The fixtures are copied; later changes to the caller's slices do not leak in.
func NewStore(f Fixtures) (*Store, error) {
	seen := make(map[string]bool, len(f.Accounts))
	for i := range f.Accounts {
		acc := f.Accounts[i]
		if err := acc.Validate(); err != nil {
			return nil, fmt.Errorf("invalid seed account %q: %w", acc.ID, err)
		}
		if seen[acc.ID] {
			return nil, fmt.Errorf("duplicate seed account ID %q", acc.ID)
		}
		seen[acc.ID] = true
	}

	seen = make(map[string]bool, len(f.Transactions))
	for i := range f.Transactions {
		tx := f.Transactions[i]
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("invalid seed transaction %q: %w", tx.ID, err)
		}
		if seen[tx.ID] {
			return nil, fmt.Errorf("duplicate seed transaction ID %q", tx.ID)
		}
		seen[tx.ID] = true
	}

	return &Store{
		accounts:     append([]domain.Account(nil), f.Accounts...),
		transactions: append([]domain.Transaction(nil), f.Transactions...),
		profile:      f.Profile,
	}, nil
}

// Snapshot returns a copy of the whole state
func (s *Store) Snapshot() Fixtures {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Fixtures{
		Accounts:     append([]domain.Account{}, s.accounts...),
		Transactions: append([]domain.Transaction{}, s.transactions...),
		Profile:      s.profile,
	}
}
