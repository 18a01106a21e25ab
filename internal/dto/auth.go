package dto

// ── auth DTOs ──

// LoginRequest POST /auth/login. Both fields are checked by the service.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
