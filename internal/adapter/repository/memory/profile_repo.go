package memory

import (
	"context"

	"github.com/simaogato/bankdash-backend/internal/domain"
)

// profileRepository implements domain.ProfileRepository
type profileRepository struct {
	store *Store
}

// NewProfileRepository creates a new profile repository backed by the store
func NewProfileRepository(store *Store) domain.ProfileRepository {
	return &profileRepository{store: store}
}

func (r *profileRepository) Get(ctx context.Context) domain.UserProfile {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.profile
}

func (r *profileRepository) UpdateField(ctx context.Context, field domain.ProfileField, value string) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.profile.Set(field, value)
}
