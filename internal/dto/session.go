package dto

// ── session DTOs ──

// CreateSessionRequest POST /sessions
type CreateSessionRequest struct {
	Date    string `json:"date"    binding:"omitempty,max=50"`
	Current bool   `json:"current"`
}

// UpdateSessionRequest PUT /sessions/:id. Currency only moves through set-current.
type UpdateSessionRequest struct {
	Date string `json:"date" binding:"omitempty,max=50"`
}

type SessionResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Current   bool   `json:"current"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
