package memory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/simaogato/bankdash-backend/internal/domain"
)

// accountRepository implements domain.AccountRepository
type accountRepository struct {
	store *Store
}

// NewAccountRepository creates a new account repository backed by the store
func NewAccountRepository(store *Store) domain.AccountRepository {
	return &accountRepository{store: store}
}

// List returns a snapshot of all accounts in insertion order
func (r *accountRepository) List(ctx context.Context) []domain.Account {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]domain.Account{}, r.store.accounts...)
}

// GetByID retrieves an account by its ID
func (r *accountRepository) GetByID(ctx context.Context, id string) (domain.Account, bool) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, acc := range r.store.accounts {
		if acc.ID == id {
			return acc, true
		}
	}
	return domain.Account{}, false
}

// UpdateBalance replaces only the balance field of the matching account
func (r *accountRepository) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.accounts {
		if r.store.accounts[i].ID == id {
			r.store.accounts[i].Balance = balance
			return true
		}
	}
	return false
}
