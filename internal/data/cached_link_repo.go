package data

import (
	"context"
	"time"

	"shortlink/internal/domain"
)

// Compile-time interface check
var _ domain.LinkRepository = (*CachedLinkRepository)(nil)

// CachedLinkRepository decorates the SQL store with a read-through cache for
// lookups by code. Writes always go to the store.
type CachedLinkRepository struct {
	repo  *LinkRepo
	cache LinkCache
}

// NewCachedLinkRepository creates a new cached repository wrapper.
func NewCachedLinkRepository(repo *LinkRepo, cache LinkCache) domain.LinkRepository {
	return &CachedLinkRepository{
		repo:  repo,
		cache: cache,
	}
}

// Insert persists a link. The cache is filled on first lookup.
func (r *CachedLinkRepository) Insert(ctx context.Context, link *domain.Link) error {
	return r.repo.Insert(ctx, link)
}

// FindByCode checks the cache first and populates it on a store hit.
func (r *CachedLinkRepository) FindByCode(ctx context.Context, code string) (*domain.Link, error) {
	if cached, ok := r.cache.Get(ctx, code); ok {
		return cached, nil
	}

	link, err := r.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	r.cache.Add(ctx, link)
	return link, nil
}

// IncrementClickCount writes through to the store. Cached click counts may lag.
func (r *CachedLinkRepository) IncrementClickCount(ctx context.Context, code string) error {
	return r.repo.IncrementClickCount(ctx, code)
}

// SoftDelete deletes in the store and tombstones the cache entry.
func (r *CachedLinkRepository) SoftDelete(ctx context.Context, code string, at time.Time) (int64, error) {
	n, err := r.repo.SoftDelete(ctx, code, at)
	if err != nil {
		return 0, err
	}

	r.cache.Tombstone(ctx, code)
	return n, nil
}

// ListActive is not cached; listings always read the store.
func (r *CachedLinkRepository) ListActive(ctx context.Context) ([]*domain.Link, error) {
	return r.repo.ListActive(ctx)
}

// ListAll is not cached.
func (r *CachedLinkRepository) ListAll(ctx context.Context) ([]*domain.Link, error) {
	return r.repo.ListAll(ctx)
}
