package dto

// ── role DTOs ──

// RoleRequest is shared by POST /roles and PUT /roles/:id.
type RoleRequest struct {
	Name        string `json:"name"        binding:"omitempty,max=50"`
	Description string `json:"description"`
}

type RoleResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type RoleSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
