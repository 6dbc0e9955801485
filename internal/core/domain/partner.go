package domain

// Partner is an organisation featured on the platform.
type Partner struct {
	Meta
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Website     string `json:"website" validate:"omitempty,url"`
	LogoURL     string `json:"logo_url"`
	IsActive    bool   `json:"is_active"`
}
