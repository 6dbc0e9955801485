package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mtendere/backoffice/internal/core/ports"
)

// Counter pairs a dashboard key with the count function backing it.
type Counter struct {
	Name  string
	Count func(ctx context.Context) (int64, error)
}

// DashboardHandler serves the admin landing counters and the analytics
// summary. Counts are computed per request; nothing is pre-aggregated.
type DashboardHandler struct {
	counters []Counter
	feed     ports.ActivityFeed
}

func NewDashboardHandler(counters []Counter, feed ports.ActivityFeed) *DashboardHandler {
	return &DashboardHandler{counters: counters, feed: feed}
}

// Dashboard returns the per-resource record counts.
//
// @Summary      Dashboard counters
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Failure      401  {object}  map[string]string
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	counts, err := h.collect(c.Request().Context(), "")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}

// Summary returns the same counters under total_-prefixed keys, the shape
// the analytics panel consumes.
//
// @Summary      Analytics summary
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Failure      401  {object}  map[string]string
// @Router       /api/analytics/summary [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	counts, err := h.collect(c.Request().Context(), "total_")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}

// Activity returns the most recent admin events, newest first.
func (h *DashboardHandler) Activity(c echo.Context) error {
	entries := h.feed.Recent(20)
	if entries == nil {
		entries = []ports.ActivityEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *DashboardHandler) collect(ctx context.Context, prefix string) (map[string]int64, error) {
	counts := make(map[string]int64, len(h.counters))
	for _, counter := range h.counters {
		n, err := counter.Count(ctx)
		if err != nil {
			return nil, err
		}
		counts[prefix+counter.Name] = n
	}
	return counts, nil
}
