package dto

// ── user DTOs ──

// Shape rules use omitempty so an absent field reaches the service's
// required-field check instead of failing validation.

// CreateUserRequest POST /users
type CreateUserRequest struct {
	Title       string `json:"title"        binding:"omitempty,max=10"`
	FirstName   string `json:"first_name"   binding:"omitempty,max=100"`
	LastName    string `json:"last_name"    binding:"omitempty,max=100"`
	Email       string `json:"email"        binding:"omitempty,email,max=100"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=20"`
	Password    string `json:"password"     binding:"omitempty,min=6,max=72"`
}

// UpdateUserRequest PUT /users/:id. Passwords are not changed here.
type UpdateUserRequest struct {
	Title       string `json:"title"        binding:"omitempty,max=10"`
	FirstName   string `json:"first_name"   binding:"omitempty,max=100"`
	LastName    string `json:"last_name"    binding:"omitempty,max=100"`
	Email       string `json:"email"        binding:"omitempty,email,max=100"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=20"`
}

// UserResponse is a user without the password hash, enriched with roles and courses.
type UserResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Roles       []RoleSummary   `json:"roles"`
	Courses     []CourseSummary `json:"courses"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// LecturerSummary is a user as listed under a course.
type LecturerSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}
