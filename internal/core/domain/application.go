package domain

import "fmt"

// ApplicationStatus is the review state of a submitted application.
type ApplicationStatus string

const (
	ApplicationPending    ApplicationStatus = "pending"
	ApplicationApproved   ApplicationStatus = "approved"
	ApplicationRejected   ApplicationStatus = "rejected"
	ApplicationWaitlisted ApplicationStatus = "waitlisted"
)

// Application is a candidate's submission against a scholarship or job.
type Application struct {
	Meta
	ApplicantName string            `json:"applicant_name" validate:"required"`
	Email         string            `json:"email" validate:"required,email"`
	Phone         string            `json:"phone"`
	ScholarshipID string            `json:"scholarship_id,omitempty"`
	JobID         string            `json:"job_id,omitempty"`
	Motivation    string            `json:"motivation"`
	Notes         string            `json:"notes"`
	Status        ApplicationStatus `json:"status"`
}

// Normalize defaults the status of a new application and rejects states
// outside the review lifecycle.
func (a *Application) Normalize() error {
	if a.Status == "" {
		a.Status = ApplicationPending
	}
	switch a.Status {
	case ApplicationPending, ApplicationApproved, ApplicationRejected, ApplicationWaitlisted:
		return nil
	}
	return fmt.Errorf("%w: unknown application status %q", ErrInvalidInput, a.Status)
}
