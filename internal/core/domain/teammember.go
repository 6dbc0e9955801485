package domain

// TeamMember is a staff profile shown on the public team page.
type TeamMember struct {
	Meta
	Name     string `json:"name" validate:"required"`
	Position string `json:"position"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photo_url"`
	Email    string `json:"email" validate:"omitempty,email"`
	LinkedIn string `json:"linkedin"`
	IsActive bool   `json:"is_active"`
}
