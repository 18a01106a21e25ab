package dto

// ── course DTOs ──

// CourseRequest is shared by POST /courses and PUT /courses/:id.
type CourseRequest struct {
	CourseCode        string `json:"course_code"        binding:"omitempty,max=20"`
	CourseTitle       string `json:"course_title"       binding:"omitempty,max=255"`
	CourseDescription string `json:"course_description"`
	CourseUnit        int    `json:"course_unit"        binding:"omitempty,min=1,max=6"`
	Level             int    `json:"level"              binding:"omitempty,oneof=100 200 300 400 500 600 700"`
	Semester          string `json:"semester"           binding:"omitempty,oneof=first second"`
	CourseType        string `json:"course_type"        binding:"omitempty,oneof=R C E"`
	CourseDepartment  string `json:"course_department"  binding:"omitempty,oneof=Internal External"`
}

type CourseResponse struct {
	ID                int64             `json:"id"`
	CourseCode        string            `json:"course_code"`
	CourseTitle       string            `json:"course_title"`
	CourseDescription string            `json:"course_description"`
	CourseUnit        int               `json:"course_unit"`
	Level             int               `json:"level"`
	Semester          string            `json:"semester"`
	CourseType        string            `json:"course_type"`
	CourseDepartment  string            `json:"course_department"`
	Lecturers         []LecturerSummary `json:"lecturers"`
	CreatedAt         string            `json:"created_at"`
	UpdatedAt         string            `json:"updated_at"`
}

// CourseSummary is a course as listed under a user.
type CourseSummary struct {
	ID          int64  `json:"id"`
	CourseCode  string `json:"course_code"`
	CourseTitle string `json:"course_title"`
}

// ImportResult reports a spreadsheet import. Rows listed in Errors were skipped.
type ImportResult struct {
	Total   int           `json:"total"`
	Success int           `json:"success"`
	Failed  int           `json:"failed"`
	Errors  []ImportError `json:"errors,omitempty"`
}

type ImportError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
