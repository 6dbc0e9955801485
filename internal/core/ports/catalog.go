package ports

import (
	"context"

	"github.com/mtendere/backoffice/internal/core/domain"
)

// ListFilter carries the query parameters shared by every catalog listing.
type ListFilter struct {
	Status     string // optional: exact status/flag match
	Search     string // optional: case-insensitive substring over text fields
	PublicOnly bool   // restrict to publicly visible records
	Page       int    // 1-based
	Limit      int    // rows per page (capped by the service)
}

// Page is one page of a listing plus the full matching count.
type Page[T any] struct {
	Items      []T
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// Repository defines the uniform persistence contract every managed entity
// collection follows. Items returned are private copies; mutating them does
// not affect the store.
type Repository[T domain.Resource] interface {
	List(ctx context.Context, filter ListFilter) ([]T, int64, error)
	FindByID(ctx context.Context, id string) (T, error)
	// Insert assigns a unique identifier and appends the record.
	Insert(ctx context.Context, item T) (T, error)
	// Replace swaps the stored record carrying item's identifier. When
	// expectedVersion is non-zero the swap only succeeds if the stored
	// version matches, failing with domain.ErrVersionConflict otherwise.
	Replace(ctx context.Context, item T, expectedVersion int64) (T, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// Catalog is the use-case surface of the generic CRUD contract applied to
// each managed entity kind.
type Catalog[T domain.Resource] interface {
	List(ctx context.Context, filter ListFilter) (*Page[T], error)
	Get(ctx context.Context, id string) (T, error)
	// Create stamps identity, creator and timestamps before persisting.
	Create(ctx context.Context, actor string, item T) (T, error)
	// Update merges the supplied JSON fields onto the stored record, leaving
	// absent fields untouched. expectedVersion as in Repository.Replace.
	Update(ctx context.Context, id string, patch []byte, expectedVersion int64) (T, error)
	Delete(ctx context.Context, id string) error
}
