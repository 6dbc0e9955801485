// Package memory provides the process-memory reference backends. Every
// collection is guarded by a mutex so each mutation is atomic with respect
// to a single record, and all reads hand out private copies.
package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/mtendere/backoffice/internal/core/domain"
	"github.com/mtendere/backoffice/internal/core/ports"
)

// Hooks supplies the per-entity behaviour a Collection cannot derive from
// the type alone. Clone is required; the rest default to "no match".
type Hooks[T domain.Resource] struct {
	// Clone returns an independent copy of the record.
	Clone func(T) T
	// SearchText lists the fields matched by free-text search.
	SearchText func(T) []string
	// Status reports the record's lifecycle value for status filtering.
	Status func(T) string
	// Visible reports whether the record may appear on public listings.
	Visible func(T) bool
}

// Collection is an insertion-ordered in-memory store implementing
// ports.Repository.
type Collection[T domain.Resource] struct {
	mu     sync.RWMutex
	items  []T
	nextID int64
	hooks  Hooks[T]
}

func NewCollection[T domain.Resource](hooks Hooks[T]) *Collection[T] {
	if hooks.Clone == nil {
		panic("memory: Hooks.Clone is required")
	}
	return &Collection[T]{hooks: hooks}
}

func (c *Collection[T]) List(_ context.Context, filter ports.ListFilter) ([]T, int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	matched := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.matches(item, filter) {
			matched = append(matched, item)
		}
	}
	total := int64(len(matched))

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = len(matched)
	}

	start := (page - 1) * limit
	if start >= len(matched) {
		return []T{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}

	out := make([]T, 0, end-start)
	for _, item := range matched[start:end] {
		out = append(out, c.hooks.Clone(item))
	}
	return out, total, nil
}

func (c *Collection[T]) FindByID(_ context.Context, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	i := c.index(id)
	if i < 0 {
		return zero, domain.ErrNotFound
	}
	return c.hooks.Clone(c.items[i]), nil
}

func (c *Collection[T]) Insert(_ context.Context, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	stored := c.hooks.Clone(item)
	stored.ResourceMeta().ID = strconv.FormatInt(c.nextID, 10)
	c.items = append(c.items, stored)
	return c.hooks.Clone(stored), nil
}

func (c *Collection[T]) Replace(_ context.Context, item T, expectedVersion int64) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	id := item.ResourceMeta().ID
	i := c.index(id)
	if i < 0 {
		return zero, domain.ErrNotFound
	}
	if expectedVersion > 0 && c.items[i].ResourceMeta().Version != expectedVersion {
		return zero, domain.ErrVersionConflict
	}
	c.items[i] = c.hooks.Clone(item)
	return c.hooks.Clone(item), nil
}

func (c *Collection[T]) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

func (c *Collection[T]) Count(_ context.Context) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(len(c.items)), nil
}

// index returns the position of id, or -1. Callers hold the lock.
func (c *Collection[T]) index(id string) int {
	for i, item := range c.items {
		if item.ResourceMeta().ID == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) matches(item T, filter ports.ListFilter) bool {
	if filter.PublicOnly {
		if c.hooks.Visible == nil || !c.hooks.Visible(item) {
			return false
		}
	}
	if filter.Status != "" {
		if c.hooks.Status == nil || !strings.EqualFold(c.hooks.Status(item), filter.Status) {
			return false
		}
	}
	if filter.Search != "" {
		if c.hooks.SearchText == nil {
			return false
		}
		q := strings.ToLower(filter.Search)
		for _, field := range c.hooks.SearchText(item) {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}
	return true
}
