package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mtendere/backoffice/internal/api/metrics"
	"github.com/mtendere/backoffice/internal/core/domain"
	"github.com/mtendere/backoffice/internal/core/ports"
)

// pagination is the envelope metadata attached to every listing response.
type pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination pagination `json:"pagination"`
}

func pageEnvelope[T any](p *ports.Page[T]) listResponse[T] {
	return listResponse[T]{
		Data: p.Items,
		Pagination: pagination{
			Total:      p.Total,
			Page:       p.Page,
			Limit:      p.Limit,
			TotalPages: p.TotalPages,
		},
	}
}

// parsePaging reads page/limit query parameters. Absent parameters default
// downstream; explicitly non-positive or non-numeric values are a 400.
func parsePaging(c echo.Context) (page, limit int, err error) {
	if raw := c.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "page must be a positive integer")
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
	}
	return page, limit, nil
}

// parseExpectedVersion reads the optional If-Match header carrying the
// version the client last saw. Absent means last-write-wins.
func parseExpectedVersion(c echo.Context) (int64, error) {
	raw := c.Request().Header.Get("If-Match")
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "if-match must be a positive integer version")
	}
	return v, nil
}

// CatalogHandler exposes the uniform CRUD surface over one managed entity
// kind. The same handler shape serves scholarships, jobs, applications and
// the rest; only the catalog service and item constructor differ.
type CatalogHandler[T domain.Resource] struct {
	name    string // plural, as it appears in paths and metrics
	catalog ports.Catalog[T]
	newItem func() T
}

func NewCatalogHandler[T domain.Resource](name string, catalog ports.Catalog[T], newItem func() T) *CatalogHandler[T] {
	return &CatalogHandler[T]{name: name, catalog: catalog, newItem: newItem}
}

// Register mounts the CRUD routes on g.
func (h *CatalogHandler[T]) Register(g *echo.Group) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List returns one page of records, filtered by optional status and search
// query parameters.
func (h *CatalogHandler[T]) List(c echo.Context) error {
	page, limit, err := parsePaging(c)
	if err != nil {
		return err
	}

	result, err := h.catalog.List(c.Request().Context(), ports.ListFilter{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pageEnvelope(result))
}

func (h *CatalogHandler[T]) Get(c echo.Context) error {
	item, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler[T]) Create(c echo.Context) error {
	actor, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	item := h.newItem()
	if err := c.Bind(item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.catalog.Create(c.Request().Context(), actor, item)
	if err != nil {
		return err
	}

	metrics.ResourceMutationsTotal.WithLabelValues(h.name, "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update applies a partial update: only the fields present in the body are
// changed. An If-Match header with the last seen version turns the write
// into a compare-and-swap.
func (h *CatalogHandler[T]) Update(c echo.Context) error {
	if _, _, err := ctxActor(c); err != nil {
		return err
	}

	expectedVersion, err := parseExpectedVersion(c)
	if err != nil {
		return err
	}

	patch, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable body")
	}
	if !json.Valid(patch) {
		return echo.NewHTTPError(http.StatusBadRequest, "body must be valid JSON")
	}

	updated, err := h.catalog.Update(c.Request().Context(), c.Param("id"), patch, expectedVersion)
	if err != nil {
		return err
	}

	metrics.ResourceMutationsTotal.WithLabelValues(h.name, "update").Inc()
	return c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler[T]) Delete(c echo.Context) error {
	if _, _, err := ctxActor(c); err != nil {
		return err
	}

	if err := h.catalog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ResourceMutationsTotal.WithLabelValues(h.name, "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
