package domain

import "time"

// Scholarship is a funding opportunity published on the platform.
// Only active scholarships are exposed through the public listing.
type Scholarship struct {
	Meta
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description"`
	Provider       string    `json:"provider"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	Country        string    `json:"country"`
	Level          string    `json:"level"` // undergraduate, masters, phd, ...
	FieldOfStudy   string    `json:"field_of_study"`
	ApplicationURL string    `json:"application_url"`
	Deadline       time.Time `json:"deadline,omitzero"`
	IsActive       bool      `json:"is_active"`
}
