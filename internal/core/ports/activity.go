package ports

import "time"

// ActivityEntry is one item of the recent-activity feed.
type ActivityEntry struct {
	ID        int64     `json:"id"`
	Event     string    `json:"event"`
	Actor     string    `json:"actor,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivityRecorder accepts activity events from services. Recording is
// fire-and-forget; implementations must not block the caller.
type ActivityRecorder interface {
	Record(event, actor string)
}

// ActivityFeed reads back recent activity, newest first.
type ActivityFeed interface {
	Recent(n int) []ActivityEntry
}
