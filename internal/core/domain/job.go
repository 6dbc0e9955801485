package domain

import "time"

// Job is an employment opportunity listing.
type Job struct {
	Meta
	Title          string    `json:"title" validate:"required"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Type           string    `json:"type" validate:"omitempty,oneof=full_time part_time contract internship"`
	Description    string    `json:"description"`
	SalaryRange    string    `json:"salary_range"`
	ApplicationURL string    `json:"application_url"`
	Deadline       time.Time `json:"deadline,omitzero"`
	IsActive       bool      `json:"is_active"`
}
