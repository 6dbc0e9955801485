package domain

import "time"

// Meta carries the bookkeeping fields shared by every managed record. Embed
// it by value in an entity struct; the pointer-receiver methods are promoted
// so *Entity satisfies Resource.
type Meta struct {
	ID        string    `json:"id"`
	Version   int64     `json:"version"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResourceMeta exposes the embedded Meta to generic code.
func (m *Meta) ResourceMeta() *Meta { return m }

// Stamp initialises bookkeeping on a freshly created record.
func (m *Meta) Stamp(createdBy string, now time.Time) {
	m.Version = 1
	m.CreatedBy = createdBy
	m.CreatedAt = now
	m.UpdatedAt = now
}

// Touch refreshes the update timestamp and bumps the version. The new
// timestamp is forced strictly past the previous one so update ordering
// stays observable on coarse clocks.
func (m *Meta) Touch(now time.Time) {
	if !now.After(m.UpdatedAt) {
		now = m.UpdatedAt.Add(time.Millisecond)
	}
	m.UpdatedAt = now
	m.Version++
}

// Resource is satisfied by pointers to entities embedding Meta.
type Resource interface {
	ResourceMeta() *Meta
}
