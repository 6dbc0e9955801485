package domain

import (
	"fmt"
	"time"
)

// BlogPostStatus is the editorial state of a post.
type BlogPostStatus string

const (
	BlogPostDraft     BlogPostStatus = "draft"
	BlogPostPublished BlogPostStatus = "published"
	BlogPostArchived  BlogPostStatus = "archived"
)

// BlogPost is an article managed through the back office. Only published
// posts are exposed through the public listing.
type BlogPost struct {
	Meta
	Title       string         `json:"title" validate:"required"`
	Slug        string         `json:"slug"`
	Excerpt     string         `json:"excerpt"`
	Content     string         `json:"content"`
	CoverURL    string         `json:"cover_url"`
	Tags        []string       `json:"tags,omitempty"`
	Status      BlogPostStatus `json:"status"`
	PublishedAt time.Time      `json:"published_at,omitzero"`
}

// Normalize defaults a new post to draft and rejects unknown states.
// Moving to published stamps the publication time once.
func (p *BlogPost) Normalize() error {
	if p.Status == "" {
		p.Status = BlogPostDraft
	}
	switch p.Status {
	case BlogPostDraft, BlogPostArchived:
	case BlogPostPublished:
		if p.PublishedAt.IsZero() {
			p.PublishedAt = time.Now().UTC()
		}
	default:
		return fmt.Errorf("%w: unknown blog post status %q", ErrInvalidInput, p.Status)
	}
	return nil
}
