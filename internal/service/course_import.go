package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/model"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/repository"
	apperrors "github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/errors"
)

const maxImportRows = 1000

// Column widths of the courses table.
const (
	maxCourseCodeLen  = 20
	maxCourseTitleLen = 255
)

var (
	ErrImportNoData      = apperrors.BadRequest("The spreadsheet has no data rows (the first row is the header)")
	ErrImportTooManyRows = apperrors.BadRequest(fmt.Sprintf("The spreadsheet has more than %d rows", maxImportRows))
	ErrImportBadHeader   = apperrors.BadRequest("The spreadsheet header is missing a course column")
	ErrImportBadFile     = apperrors.BadRequest("The file is not a readable .xlsx spreadsheet")
)

// CourseImportRow is one parsed spreadsheet row. Numbers stay text until
// validation so a bad cell is reported against its row.
type CourseImportRow struct {
	Row               int
	CourseCode        string
	CourseTitle       string
	CourseDescription string
	CourseUnit        string
	Level             string
	Semester          string
	CourseType        string
	CourseDepartment  string
}

var importColumns = []string{
	"course_code", "course_title", "course_description", "course_unit",
	"level", "semester", "course_type", "course_department",
}

// ────────────────────── ParseImportFile ──────────────────────

// ParseImportFile reads the first sheet. Columns are matched by header name
// in any order; blank rows are skipped.
func (s *courseService) ParseImportFile(reader io.Reader) ([]CourseImportRow, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, ErrImportBadFile
	}
	defer f.Close()

	sheetRows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, ErrImportBadFile
	}
	if len(sheetRows) < 2 {
		return nil, ErrImportNoData
	}

	index := make(map[string]int, len(importColumns))
	for i, h := range sheetRows[0] {
		key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(h), " ", "_"))
		index[key] = i
	}
	for _, col := range importColumns {
		if _, ok := index[col]; !ok {
			return nil, ErrImportBadHeader
		}
	}

	get := func(row []string, col string) string {
		if i := index[col]; i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var rows []CourseImportRow
	for i := 1; i < len(sheetRows); i++ {
		r := sheetRows[i]
		item := CourseImportRow{
			Row:               i + 1,
			CourseCode:        get(r, "course_code"),
			CourseTitle:       get(r, "course_title"),
			CourseDescription: get(r, "course_description"),
			CourseUnit:        get(r, "course_unit"),
			Level:             get(r, "level"),
			Semester:          strings.ToLower(get(r, "semester")),
			CourseType:        strings.ToUpper(get(r, "course_type")),
			CourseDepartment:  get(r, "course_department"),
		}
		if item == (CourseImportRow{Row: item.Row}) {
			continue
		}
		rows = append(rows, item)
	}

	if len(rows) == 0 {
		return nil, ErrImportNoData
	}
	if len(rows) > maxImportRows {
		return nil, ErrImportTooManyRows
	}
	return rows, nil
}

// validateImportRow applies the same rules as the JSON endpoint.
func validateImportRow(row CourseImportRow) (*model.Course, string) {
	if blank(row.CourseCode, row.CourseTitle, row.CourseDescription, row.CourseUnit,
		row.Level, row.Semester, row.CourseType, row.CourseDepartment) {
		return nil, "Missing required fields"
	}
	if utf8.RuneCountInString(row.CourseCode) > maxCourseCodeLen {
		return nil, "Course code is too long"
	}
	if utf8.RuneCountInString(row.CourseTitle) > maxCourseTitleLen {
		return nil, "Course title is too long"
	}
	unit, err := strconv.Atoi(row.CourseUnit)
	if err != nil || unit < 1 || unit > 6 {
		return nil, "Course unit must be an integer between 1 and 6"
	}
	level, err := strconv.Atoi(row.Level)
	if err != nil || level < 100 || level > 700 || level%100 != 0 {
		return nil, "Invalid level"
	}
	if row.Semester != "first" && row.Semester != "second" {
		return nil, "Semester must be either first or second"
	}
	if row.CourseType != "R" && row.CourseType != "C" && row.CourseType != "E" {
		return nil, "Invalid Type"
	}
	if row.CourseDepartment != "Internal" && row.CourseDepartment != "External" {
		return nil, "Invalid Department"
	}
	return &model.Course{
		CourseCode:        row.CourseCode,
		CourseTitle:       row.CourseTitle,
		CourseDescription: row.CourseDescription,
		CourseUnit:        unit,
		Level:             level,
		Semester:          row.Semester,
		CourseType:        row.CourseType,
		CourseDepartment:  row.CourseDepartment,
	}, ""
}

// ────────────────────── Import ──────────────────────

// Import validates every row first, then inserts the valid ones in a single
// transaction. A write failure rolls back the whole import.
func (s *courseService) Import(ctx context.Context, rows []CourseImportRow) (*dto.ImportResult, error) {
	result := &dto.ImportResult{Total: len(rows)}
	fail := func(row int, reason string) {
		result.Failed++
		result.Errors = append(result.Errors, dto.ImportError{Row: row, Reason: reason})
	}

	// phase 1: row rules and in-file duplicates
	type validRow struct {
		row    int
		course model.Course
	}
	var valid []validRow
	seen := make(map[string]int)
	for _, row := range rows {
		course, reason := validateImportRow(row)
		if reason != "" {
			fail(row.Row, reason)
			continue
		}
		if first, ok := seen[course.CourseCode]; ok {
			fail(row.Row, fmt.Sprintf("Duplicate of row %d", first))
			continue
		}
		seen[course.CourseCode] = row.Row
		valid = append(valid, validRow{row: row.Row, course: *course})
	}

	// phase 2: codes already in the database
	codes := make([]string, 0, len(valid))
	for _, v := range valid {
		codes = append(codes, v.course.CourseCode)
	}
	existing, err := s.repo.Course.ExistingCodes(ctx, codes)
	if err != nil {
		s.logger.Error("check existing course codes failed", zap.Error(err))
		return nil, err
	}
	taken := make(map[string]bool, len(existing))
	for _, c := range existing {
		taken[c] = true
	}

	courses := make([]model.Course, 0, len(valid))
	for _, v := range valid {
		if taken[v.course.CourseCode] {
			fail(v.row, "Course already exists")
			continue
		}
		courses = append(courses, v.course)
	}

	// phase 3: all-or-nothing insert
	if len(courses) > 0 {
		err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
			return tx.Course.CreateBatch(ctx, courses)
		})
		if err != nil {
			s.logger.Error("import courses failed, rolled back", zap.Error(err))
			return nil, err
		}
	}
	result.Success = len(courses)

	s.logger.Info("courses imported",
		zap.Int("total", result.Total),
		zap.Int("success", result.Success),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
