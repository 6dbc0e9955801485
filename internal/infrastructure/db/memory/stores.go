package memory

import "github.com/mtendere/backoffice/internal/core/domain"

// Per-entity collection constructors. Hooks with slice or map fields need a
// deep Clone; the rest copy by value.

func NewScholarshipCollection() *Collection[*domain.Scholarship] {
	return NewCollection(Hooks[*domain.Scholarship]{
		Clone: func(s *domain.Scholarship) *domain.Scholarship { c := *s; return &c },
		SearchText: func(s *domain.Scholarship) []string {
			return []string{s.Title, s.Provider, s.Country, s.FieldOfStudy}
		},
		Status:  activeStatus(func(s *domain.Scholarship) bool { return s.IsActive }),
		Visible: func(s *domain.Scholarship) bool { return s.IsActive },
	})
}

func NewJobCollection() *Collection[*domain.Job] {
	return NewCollection(Hooks[*domain.Job]{
		Clone: func(j *domain.Job) *domain.Job { c := *j; return &c },
		SearchText: func(j *domain.Job) []string {
			return []string{j.Title, j.Company, j.Location}
		},
		Status:  activeStatus(func(j *domain.Job) bool { return j.IsActive }),
		Visible: func(j *domain.Job) bool { return j.IsActive },
	})
}

func NewApplicationCollection() *Collection[*domain.Application] {
	return NewCollection(Hooks[*domain.Application]{
		Clone: func(a *domain.Application) *domain.Application { c := *a; return &c },
		SearchText: func(a *domain.Application) []string {
			return []string{a.ApplicantName, a.Email}
		},
		Status: func(a *domain.Application) string { return string(a.Status) },
		// Applications carry personal data and are never publicly listed.
	})
}

func NewPartnerCollection() *Collection[*domain.Partner] {
	return NewCollection(Hooks[*domain.Partner]{
		Clone: func(p *domain.Partner) *domain.Partner { c := *p; return &c },
		SearchText: func(p *domain.Partner) []string {
			return []string{p.Name}
		},
		Status:  activeStatus(func(p *domain.Partner) bool { return p.IsActive }),
		Visible: func(p *domain.Partner) bool { return p.IsActive },
	})
}

func NewBlogPostCollection() *Collection[*domain.BlogPost] {
	return NewCollection(Hooks[*domain.BlogPost]{
		Clone: func(p *domain.BlogPost) *domain.BlogPost {
			c := *p
			c.Tags = append([]string(nil), p.Tags...)
			return &c
		},
		SearchText: func(p *domain.BlogPost) []string {
			return append([]string{p.Title, p.Excerpt}, p.Tags...)
		},
		Status:  func(p *domain.BlogPost) string { return string(p.Status) },
		Visible: func(p *domain.BlogPost) bool { return p.Status == domain.BlogPostPublished },
	})
}

func NewTeamMemberCollection() *Collection[*domain.TeamMember] {
	return NewCollection(Hooks[*domain.TeamMember]{
		Clone: func(m *domain.TeamMember) *domain.TeamMember { c := *m; return &c },
		SearchText: func(m *domain.TeamMember) []string {
			return []string{m.Name, m.Position}
		},
		Status:  activeStatus(func(m *domain.TeamMember) bool { return m.IsActive }),
		Visible: func(m *domain.TeamMember) bool { return m.IsActive },
	})
}

func NewTestimonialCollection() *Collection[*domain.Testimonial] {
	return NewCollection(Hooks[*domain.Testimonial]{
		Clone: func(t *domain.Testimonial) *domain.Testimonial { c := *t; return &c },
		SearchText: func(t *domain.Testimonial) []string {
			return []string{t.AuthorName, t.Quote}
		},
		Status:  activeStatus(func(t *domain.Testimonial) bool { return t.IsApproved }),
		Visible: func(t *domain.Testimonial) bool { return t.IsApproved },
	})
}

func NewRoleCollection() *Collection[*domain.RoleDefinition] {
	return NewCollection(Hooks[*domain.RoleDefinition]{
		Clone: func(r *domain.RoleDefinition) *domain.RoleDefinition {
			c := *r
			c.Permissions = append([]string(nil), r.Permissions...)
			return &c
		},
		SearchText: func(r *domain.RoleDefinition) []string {
			return []string{r.Name, r.Description}
		},
		// Role definitions are admin-only and carry no lifecycle status.
	})
}

// activeStatus maps a boolean flag onto the "active"/"inactive" status
// vocabulary used by listing filters.
func activeStatus[T domain.Resource](active func(T) bool) func(T) string {
	return func(item T) string {
		if active(item) {
			return "active"
		}
		return "inactive"
	}
}
