package dto

// LoginResponse carries the bearer token and the caller's profile.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expires_in"` // seconds
	User      ProfileResponse `json:"user"`
}

// ProfileResponse is the sanitized profile returned at login and by GET /auth/me.
type ProfileResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phone_number"`
	Roles       []string `json:"roles"`
}

// HealthResponse GET /health
type HealthResponse struct {
	Database string `json:"database"`
	Redis    string `json:"redis"`
}
