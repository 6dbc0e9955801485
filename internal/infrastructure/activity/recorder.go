// Package activity keeps a bounded in-process feed of recent admin events,
// backing the analytics activity endpoint.
package activity

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mtendere/backoffice/internal/core/ports"
)

const (
	feedCapacity = 100
	queueBuffer  = 64
)

// Recorder drains a buffered channel into a bounded ring so Record never
// blocks a request. When the queue is full the entry is dropped.
type Recorder struct {
	ch  chan ports.ActivityEntry
	log zerolog.Logger

	mu      sync.RWMutex
	entries []ports.ActivityEntry
	nextID  int64
}

func NewRecorder(log zerolog.Logger) *Recorder {
	return &Recorder{
		ch:  make(chan ports.ActivityEntry, queueBuffer),
		log: log,
	}
}

// Start launches the drain goroutine. It stops when ctx is cancelled.
func (r *Recorder) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case entry := <-r.ch:
				r.append(entry)
			}
		}
	}()
}

// Record enqueues an event without blocking the caller.
func (r *Recorder) Record(event, actor string) {
	entry := ports.ActivityEntry{
		Event:     event,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	}
	select {
	case r.ch <- entry:
	default:
		r.log.Debug().Str("event", event).Msg("activity queue full, entry dropped")
	}
}

// Recent returns up to n entries, newest first.
func (r *Recorder) Recent(n int) []ports.ActivityEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n <= 0 || n > len(r.entries) {
		n = len(r.entries)
	}
	out := make([]ports.ActivityEntry, 0, n)
	for i := len(r.entries) - 1; i >= len(r.entries)-n; i-- {
		out = append(out, r.entries[i])
	}
	return out
}

func (r *Recorder) append(entry ports.ActivityEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = r.nextID
	r.entries = append(r.entries, entry)
	if len(r.entries) > feedCapacity {
		r.entries = r.entries[len(r.entries)-feedCapacity:]
	}
}
