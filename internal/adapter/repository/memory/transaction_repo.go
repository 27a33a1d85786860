package memory

import (
	"context"

	"github.com/simaogato/bankdash-backend/internal/domain"
)

// transactionRepository implements domain.TransactionRepository
type transactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a new transaction repository backed by the store
func NewTransactionRepository(store *Store) domain.TransactionRepository {
	return &transactionRepository{store: store}
}

// List returns a snapshot of all transactions, head first
func (r *transactionRepository) List(ctx context.Context) []domain.Transaction {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]domain.Transaction{}, r.store.transactions...)
}

// Upsert replaces every field of the record with tx.ID
// It never inserts: edits cannot create new IDs through this path.
func (r *transactionRepository) Upsert(ctx context.Context, tx domain.Transaction) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.transactions {
		if r.store.transactions[i].ID == tx.ID {
			r.store.transactions[i] = tx
			return true
		}
	}
	return false
}

// Update applies fn to the record with the given ID
// The read and the write happen under one lock, so concurrent edits of
// different fields of the same record are never lost.
func (r *transactionRepository) Update(ctx context.Context, id string, fn func(tx *domain.Transaction)) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.transactions {
		if r.store.transactions[i].ID == id {
			fn(&r.store.transactions[i])
			return true
		}
	}
	return false
}

// Prepend inserts tx as the new head of the sequence
func (r *transactionRepository) Prepend(ctx context.Context, tx domain.Transaction) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	txs := make([]domain.Transaction, 0, len(r.store.transactions)+1)
	txs = append(txs, tx)
	r.store.transactions = append(txs, r.store.transactions...)
}

// Count returns the number of transactions held
func (r *transactionRepository) Count(ctx context.Context) int {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.transactions)
}
