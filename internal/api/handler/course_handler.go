package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/service"
	apperrors "github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/errors"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/response"
)

var ErrImportFileRequired = apperrors.BadRequest("Please upload an .xlsx file in the \"file\" field")

// CourseHandler course CRUD plus spreadsheet import.
type CourseHandler struct {
	courseSvc service.CourseService
}

func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// ListCourses GET /api/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Courses retrieved successfully", courses)
}

// GetCourse GET /api/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, err := parseID(c, "course")
	if err != nil {
		fail(c, err)
		return
	}

	course, err := h.courseSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Course retrieved successfully", course)
}

// CreateCourse POST /api/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CourseRequest
	if err := bindStrict(c, &req); err != nil {
		fail(c, err)
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "Course created successfully", course)
}

// UpdateCourse PUT /api/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, err := parseID(c, "course")
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.CourseRequest
	if err := bindStrict(c, &req); err != nil {
		fail(c, err)
		return
	}

	course, err := h.courseSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Course updated successfully", course)
}

// DeleteCourse DELETE /api/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, err := parseID(c, "course")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Message(c, "Course deleted successfully")
}

// ImportCourses POST /api/courses/import (multipart, field "file")
func (h *CourseHandler) ImportCourses(c *gin.Context) {
	header, err := c.FormFile("file")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		fail(c, err)
		return
	}
	if err != nil || !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		fail(c, ErrImportFileRequired)
		return
	}

	file, err := header.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer file.Close()

	rows, err := h.courseSvc.ParseImportFile(file)
	if err != nil {
		fail(c, err)
		return
	}

	result, err := h.courseSvc.Import(c.Request.Context(), rows)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Courses imported successfully", result)
}
