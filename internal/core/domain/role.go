package domain

import "fmt"

// Permissions is the fixed catalog of permission strings a role definition
// may bundle. Anything outside this set is rejected.
var Permissions = map[string]struct{}{
	"view_dashboard":      {},
	"view_analytics":      {},
	"manage_scholarships": {},
	"manage_jobs":         {},
	"manage_applications": {},
	"manage_partners":     {},
	"manage_blog":         {},
	"manage_team":         {},
	"manage_testimonials": {},
	"manage_users":        {},
	"manage_roles":        {},
	"manage_settings":     {},
}

// RoleDefinition is a named permission bundle managed through the back
// office. It is distinct from the ordered Role ladder that gates routes.
type RoleDefinition struct {
	Meta
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// Normalize rejects permission strings outside the catalog.
func (r *RoleDefinition) Normalize() error {
	for _, p := range r.Permissions {
		if _, ok := Permissions[p]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPermission, p)
		}
	}
	return nil
}
