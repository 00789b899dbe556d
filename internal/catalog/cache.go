package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/modateam/shopcore/internal/domain"
	"github.com/modateam/shopcore/internal/logger"
)

// Store is the persistence surface the catalog reads from.
type Store interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
}

// Service exposes the cached catalog.
type Service interface {
	// ListItems returns the catalog ordered by ascending price. The result
	// is a snapshot refreshed at most once per TTL; concurrent callers
	// during the stale window may refresh redundantly, which is harmless.
	ListItems(ctx context.Context) ([]domain.Item, error)

	// GetItem returns one catalog item, or nil when no such item exists.
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)
}

// snapshot is an immutable catalog capture with its refresh time.
type snapshot struct {
	items     []domain.Item
	fetchedAt time.Time
}

type service struct {
	store    Store
	ttl      time.Duration
	now      func() time.Time
	snapshot atomic.Pointer[snapshot]
	items    *expirable.LRU[int, *domain.Item]
}

// NewService creates a catalog service with the given snapshot TTL. The
// clock is injectable for deterministic staleness tests.
func NewService(store Store, ttl time.Duration, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		store: store,
		ttl:   ttl,
		now:   now,
		items: expirable.NewLRU[int, *domain.Item](ItemCacheSize, nil, ttl),
	}
}

func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	if snap := s.snapshot.Load(); snap != nil && s.now().Sub(snap.fetchedAt) < s.ttl {
		return snap.items, nil
	}

	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	s.snapshot.Store(&snapshot{items: items, fetchedAt: s.now()})
	logger.FromContext(ctx).Debug(LogMsgCatalogRefreshed, "items", len(items))
	return items, nil
}

func (s *service) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	if item, ok := s.items.Get(itemID); ok {
		return item, nil
	}

	item, err := s.store.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		// Negative results are not cached: absent ids are rare and a
		// just-seeded item should be purchasable immediately.
		return nil, nil
	}

	s.items.Add(itemID, item)
	return item, nil
}
