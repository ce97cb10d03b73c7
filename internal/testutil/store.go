package testutil

import (
	"context"
	"sort"
	"sync"

	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/types"
)

// FilterFunc reports whether an item belongs in a list result
type FilterFunc[E any] func(item *E) bool

// SortFunc orders two items for a list result
type SortFunc[E any] func(i, j *E) bool

// InMemoryStore is a map backed store that hands out copies, so callers mutating a
// result never change stored state without calling Update.
type InMemoryStore[E any] struct {
	mu    sync.RWMutex
	items map[string]*E
	order []string

	// notFoundHint matches the hint the postgres repository uses for the entity
	notFoundHint string
	// ownerOf returns the user that owns an item; nil disables scoping
	ownerOf func(*E) string
}

// NewInMemoryStore creates a store whose scoped reads only see the context user's items
func NewInMemoryStore[E any](notFoundHint string, ownerOf func(*E) string) *InMemoryStore[E] {
	return &InMemoryStore[E]{
		items:        make(map[string]*E),
		notFoundHint: notFoundHint,
		ownerOf:      ownerOf,
	}
}

func (s *InMemoryStore[E]) visible(ctx context.Context, item *E) bool {
	return s.ownerOf == nil || s.ownerOf(item) == types.GetUserID(ctx)
}

func (s *InMemoryStore[E]) notFound() error {
	return ierr.NewError("item not found").
		WithHint(s.notFoundHint).
		Mark(ierr.ErrNotFound)
}

func clone[E any](item *E) *E {
	c := *item
	return &c
}

func (s *InMemoryStore[E]) Create(ctx context.Context, id string, item *E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return ierr.NewError("item already exists").
			WithHint("A record with these details already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	s.items[id] = clone(item)
	s.order = append(s.order, id)
	return nil
}

// Get returns the item when the context user owns it
func (s *InMemoryStore[E]) Get(ctx context.Context, id string) (*E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[id]
	if !exists || !s.visible(ctx, item) {
		return nil, s.notFound()
	}
	return clone(item), nil
}

// GetUnscoped returns the item regardless of owner
func (s *InMemoryStore[E]) GetUnscoped(ctx context.Context, id string) (*E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[id]
	if !exists {
		return nil, s.notFound()
	}
	return clone(item), nil
}

// Find returns the first stored item, in insertion order, matching fn regardless of owner
func (s *InMemoryStore[E]) Find(fn FilterFunc[E]) (*E, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if item := s.items[id]; fn(item) {
			return clone(item), true
		}
	}
	return nil, false
}

// List returns the context user's items that pass filterFn, sorted and paged.
// Items are considered in insertion order before sorting so equal keys stay stable.
func (s *InMemoryStore[E]) List(ctx context.Context, page *types.QueryFilter, filterFn FilterFunc[E], sortFn SortFunc[E]) ([]*E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*E, 0)
	for _, id := range s.order {
		item := s.items[id]
		if !s.visible(ctx, item) {
			continue
		}
		if filterFn == nil || filterFn(item) {
			result = append(result, clone(item))
		}
	}

	if sortFn != nil {
		sort.SliceStable(result, func(i, j int) bool {
			return sortFn(result[i], result[j])
		})
	}

	if page != nil && !page.IsUnlimited() {
		start := page.GetOffset()
		if start >= len(result) {
			return []*E{}, nil
		}
		end := start + page.GetLimit()
		if end > len(result) {
			end = len(result)
		}
		return result[start:end], nil
	}
	return result, nil
}

func (s *InMemoryStore[E]) Count(ctx context.Context, filterFn FilterFunc[E]) (int, error) {
	items, err := s.List(ctx, nil, filterFn, nil)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Update replaces an item the context user owns
func (s *InMemoryStore[E]) Update(ctx context.Context, id string, item *E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.items[id]
	if !exists || !s.visible(ctx, existing) {
		return s.notFound()
	}
	s.items[id] = clone(item)
	return nil
}

// UpdateUnscoped replaces an item regardless of owner
func (s *InMemoryStore[E]) UpdateUnscoped(ctx context.Context, id string, item *E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return s.notFound()
	}
	s.items[id] = clone(item)
	return nil
}

func (s *InMemoryStore[E]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.items[id]
	if !exists || !s.visible(ctx, existing) {
		return s.notFound()
	}
	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len counts every stored item regardless of owner
func (s *InMemoryStore[E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear removes all items from the store
func (s *InMemoryStore[E]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*E)
	s.order = nil
}

// newestFirst sorts by creation time, newest first
func newestFirst(a, b types.BaseModel) bool {
	return a.CreatedAt.After(b.CreatedAt)
}
