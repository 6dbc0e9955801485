package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mtendere/backoffice/internal/core/domain"
	"github.com/mtendere/backoffice/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Catalog is the generic CRUD service backing every managed entity kind.
// Entity-specific invariants are injected as a normalize hook so the
// contract itself stays uniform.
type Catalog[T domain.Resource] struct {
	name      string
	repo      ports.Repository[T]
	normalize func(T) error // optional, runs before create and after merge
	activity  ports.ActivityRecorder
	logger    zerolog.Logger
}

func NewCatalog[T domain.Resource](name string, repo ports.Repository[T], normalize func(T) error, activity ports.ActivityRecorder, logger zerolog.Logger) *Catalog[T] {
	return &Catalog[T]{name: name, repo: repo, normalize: normalize, activity: activity, logger: logger}
}

func (s *Catalog[T]) List(ctx context.Context, filter ports.ListFilter) (*ports.Page[T], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.Page[T]{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *Catalog[T]) Get(ctx context.Context, id string) (T, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Catalog[T]) Create(ctx context.Context, actor string, item T) (T, error) {
	var zero T

	meta := item.ResourceMeta()
	*meta = domain.Meta{}
	meta.Stamp(actor, time.Now().UTC())

	if s.normalize != nil {
		if err := s.normalize(item); err != nil {
			return zero, err
		}
	}

	created, err := s.repo.Insert(ctx, item)
	if err != nil {
		return zero, err
	}

	if s.activity != nil {
		s.activity.Record(s.name+"_created", actor)
	}
	s.logger.Info().Str("resource", s.name).Str("id", created.ResourceMeta().ID).Msg("record created")
	return created, nil
}

// Update merges the supplied JSON fields onto the stored record: the patch
// is decoded over a copy of the record, so absent fields keep their values.
// Identity, creator, creation time and version cannot be moved by a patch.
//
// The write is committed with a compare-and-swap on the version that was
// read, so a writer landing between the read and the swap never gets
// overwritten: the merge is redone against the fresh record. A
// caller-supplied expected version is checked once and never retried.
func (s *Catalog[T]) Update(ctx context.Context, id string, patch []byte, expectedVersion int64) (T, error) {
	var zero T

	for {
		item, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return zero, err
		}

		prev := *item.ResourceMeta()
		if expectedVersion > 0 && prev.Version != expectedVersion {
			return zero, domain.ErrVersionConflict
		}

		if err := json.Unmarshal(patch, item); err != nil {
			return zero, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}

		meta := item.ResourceMeta()
		*meta = prev
		meta.Touch(time.Now().UTC())

		if s.normalize != nil {
			if err := s.normalize(item); err != nil {
				return zero, err
			}
		}

		updated, err := s.repo.Replace(ctx, item, prev.Version)
		if expectedVersion == 0 && errors.Is(err, domain.ErrVersionConflict) {
			continue
		}
		return updated, err
	}
}

// Count reports the total number of stored records, backing the dashboard
// counters.
func (s *Catalog[T]) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *Catalog[T]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("resource", s.name).Str("id", id).Msg("record deleted")
	return nil
}

// normalizePage applies the listing defaults: first page, 20 rows, capped at
// 100. Explicit non-positive values are rejected at the transport layer.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
