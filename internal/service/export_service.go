package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/model"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/repository"
	apperrors "github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/errors"
)

var ErrExportNoCourses = apperrors.NotFound("No courses to export")

// ExportService renders spreadsheets. The buffer is written to the response
// by the handler, which also sets the download headers.
type ExportService interface {
	// ExportCourses lists every course with its lecturers, one sheet per semester.
	ExportCourses(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var courseSheets = []struct {
	semester string
	title    string
}{
	{"first", "First Semester"},
	{"second", "Second Semester"},
}

var courseHeader = []string{"Code", "Title", "Unit", "Level", "Type", "Department", "Lecturers"}

func (s *exportService) ExportCourses(ctx context.Context) (*bytes.Buffer, string, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("list courses for export failed", zap.Error(err))
		return nil, "", err
	}
	if len(courses) == 0 {
		return nil, "", ErrExportNoCourses
	}

	// the current session only labels the file
	label := ""
	if current, err := s.repo.Session.GetCurrent(ctx); err == nil {
		label = current.Date
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("get current session for export failed", zap.Error(err))
	}

	bySemester := make(map[string][]model.Course)
	for _, c := range courses {
		bySemester[c.Semester] = append(bySemester[c.Semester], c)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, sheet := range courseSheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.title); err != nil {
				return nil, "", apperrors.Internal(err)
			}
		} else if _, err := f.NewSheet(sheet.title); err != nil {
			return nil, "", apperrors.Internal(err)
		}
		writeCourseSheet(f, sheet.title, label, bySemester[sheet.semester], headerStyle)
	}
	f.SetActiveSheet(0)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write xlsx failed", zap.Error(err))
		return nil, "", apperrors.Internal(err)
	}

	filename := "courses.xlsx"
	if label != "" {
		filename = fmt.Sprintf("courses_%s.xlsx", sanitizeFilename(label))
	}
	return buf, filename, nil
}

func writeCourseSheet(f *excelize.File, sheet, label string, courses []model.Course, headerStyle int) {
	title := sheet
	if label != "" {
		title = fmt.Sprintf("%s (%s)", sheet, label)
	}
	lastCol := colName(len(courseHeader) - 1)

	f.SetCellValue(sheet, "A1", title)
	f.MergeCell(sheet, "A1", lastCol+"1")
	f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)

	for i, h := range courseHeader {
		f.SetCellValue(sheet, cell(colName(i), 2), h)
	}
	f.SetCellStyle(sheet, "A2", lastCol+"2", headerStyle)

	f.SetColWidth(sheet, "A", "A", 10)
	f.SetColWidth(sheet, "B", "B", 36)
	f.SetColWidth(sheet, "C", "F", 11)
	f.SetColWidth(sheet, "G", "G", 48)

	row := 3
	for _, c := range courses {
		names := make([]string, 0, len(c.Lecturers))
		for _, l := range c.Lecturers {
			names = append(names, strings.TrimSpace(fmt.Sprintf("%s %s %s", l.Title, l.FirstName, l.LastName)))
		}
		values := []interface{}{c.CourseCode, c.CourseTitle, c.CourseUnit, c.Level, c.CourseType, c.CourseDepartment, strings.Join(names, ", ")}
		for i, v := range values {
			f.SetCellValue(sheet, cell(colName(i), row), v)
		}
		row++
	}
}

// sanitizeFilename keeps letters, digits, dash and underscore.
func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}

// ── helpers ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
