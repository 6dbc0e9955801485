package domain

// Testimonial is a quote from a platform beneficiary. Only approved
// testimonials appear publicly.
type Testimonial struct {
	Meta
	AuthorName  string `json:"author_name" validate:"required"`
	AuthorTitle string `json:"author_title"`
	Quote       string `json:"quote" validate:"required"`
	Rating      int    `json:"rating" validate:"omitempty,min=1,max=5"`
	IsApproved  bool   `json:"is_approved"`
}
