package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mtendere/backoffice/internal/core/ports"
)

type stubFeed struct {
	entries []ports.ActivityEntry
}

func (s *stubFeed) Recent(n int) []ports.ActivityEntry {
	if n > len(s.entries) {
		n = len(s.entries)
	}
	return s.entries[:n]
}

func fixedCount(n int64) func(ctx context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) { return n, nil }
}

func TestDashboardHandler_Dashboard(t *testing.T) {
	e := newTestEcho()
	handler := NewDashboardHandler([]Counter{
		{Name: "scholarships", Count: fixedCount(4)},
		{Name: "users", Count: fixedCount(2)},
	}, &stubFeed{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var counts map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &counts); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if counts["scholarships"] != 4 || counts["users"] != 2 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestDashboardHandler_SummaryPrefixesKeys(t *testing.T) {
	e := newTestEcho()
	handler := NewDashboardHandler([]Counter{
		{Name: "jobs", Count: fixedCount(7)},
	}, &stubFeed{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Summary(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var counts map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &counts); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if counts["total_jobs"] != 7 {
		t.Fatalf("expected total_jobs=7, got %+v", counts)
	}
}

func TestDashboardHandler_Activity(t *testing.T) {
	e := newTestEcho()
	feed := &stubFeed{entries: []ports.ActivityEntry{
		{ID: 2, Event: "scholarship_created", Actor: "admin-1", Timestamp: time.Now()},
		{ID: 1, Event: "user_registered", Actor: "a@example.com", Timestamp: time.Now()},
	}}
	handler := NewDashboardHandler(nil, feed)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Activity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var entries []ports.ActivityEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(entries) != 2 || entries[0].Event != "scholarship_created" {
		t.Fatalf("unexpected feed: %+v", entries)
	}
}
