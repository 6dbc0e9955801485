package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mtendere/backoffice/internal/api/metrics"
	"github.com/mtendere/backoffice/internal/core/domain"
	"github.com/mtendere/backoffice/internal/core/ports"
)

// PublicCatalogHandler serves the unauthenticated read-only view of a
// catalog: only publicly visible records, list and get. Listings are
// optionally served through a short-TTL response cache; staleness up to the
// TTL is acceptable, so writes do not invalidate.
type PublicCatalogHandler[T domain.Resource] struct {
	name    string
	catalog ports.Catalog[T]
	visible func(T) bool        // nil means every record is public
	cache   ports.ResponseCache // nil disables caching
	logger  zerolog.Logger
}

func NewPublicCatalogHandler[T domain.Resource](name string, catalog ports.Catalog[T], visible func(T) bool, cache ports.ResponseCache, logger zerolog.Logger) *PublicCatalogHandler[T] {
	return &PublicCatalogHandler[T]{name: name, catalog: catalog, visible: visible, cache: cache, logger: logger}
}

// Register mounts the public read routes on g.
func (h *PublicCatalogHandler[T]) Register(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
}

func (h *PublicCatalogHandler[T]) List(c echo.Context) error {
	page, limit, err := parsePaging(c)
	if err != nil {
		return err
	}
	search := c.QueryParam("search")
	ctx := c.Request().Context()

	key := fmt.Sprintf("public:%s:p=%d:l=%d:q=%s", h.name, page, limit, search)
	if h.cache != nil {
		if payload, ok := h.cache.Get(ctx, key); ok {
			metrics.PublicCacheTotal.WithLabelValues("hit").Inc()
			return c.JSONBlob(http.StatusOK, payload)
		}
		metrics.PublicCacheTotal.WithLabelValues("miss").Inc()
	}

	result, err := h.catalog.List(ctx, ports.ListFilter{
		Search:     search,
		PublicOnly: true,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return err
	}

	payload, err := json.Marshal(pageEnvelope(result))
	if err != nil {
		return err
	}
	if h.cache != nil {
		if err := h.cache.Set(ctx, key, payload); err != nil {
			h.logger.Warn().Str("key", key).Err(err).Msg("cache set failed")
		}
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// Get returns a single record, hiding records that are not publicly visible
// behind the same 404 as records that do not exist.
func (h *PublicCatalogHandler[T]) Get(c echo.Context) error {
	item, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if h.visible != nil && !h.visible(item) {
		return domain.ErrNotFound
	}
	return c.JSON(http.StatusOK, item)
}
