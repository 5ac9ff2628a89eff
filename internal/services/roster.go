package services

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"student-manager/internal/logger"
	"student-manager/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	StudentsSheet = "Students"
	CoursesSheet  = "Courses"
)

var (
	studentHeader = []interface{}{"ID", "Name", "Course", "Email", "Grade"}
	courseHeader  = []interface{}{"Course", "Description"}
)

// RosterService writes registry snapshots out as spreadsheets
type RosterService struct {
	logger logger.Logger
}

// NewRosterService creates a new roster service
func NewRosterService(log logger.Logger) *RosterService {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &RosterService{logger: log}
}

// SaveRoster exports to writer and closes it, reporting the first error
func (rs *RosterService) SaveRoster(writer io.WriteCloser, students []models.Student, courses []string) (err error) {
	defer func() {
		if closeErr := writer.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close export target: %w", closeErr)
		}
	}()
	return rs.ExportRoster(writer, students, courses)
}

// ExportStudents writes a workbook holding only the Students sheet
func (rs *RosterService) ExportStudents(w io.Writer, students []models.Student) error {
	return rs.ExportRoster(w, students, nil)
}

// ExportRoster writes a Students sheet and, when courses is non-empty, a Courses sheet
func (rs *RosterService) ExportRoster(w io.Writer, students []models.Student, courses []string) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			rs.logger.Warning("RosterService", "failed to close workbook", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), StudentsSheet); err != nil {
		return fmt.Errorf("failed to name students sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	rows := make([][]interface{}, 0, len(students))
	for _, s := range students {
		rows = append(rows, []interface{}{s.ID, s.Name, s.Course, s.Email, string(s.Grade)})
	}
	if err := writeSheet(f, StudentsSheet, studentHeader, rows, headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(StudentsSheet, "A", "E", 22); err != nil {
		return fmt.Errorf("failed to size students columns: %w", err)
	}

	if len(courses) > 0 {
		if _, err := f.NewSheet(CoursesSheet); err != nil {
			return fmt.Errorf("failed to create courses sheet: %w", err)
		}
		rows = rows[:0]
		for _, name := range courses {
			rows = append(rows, []interface{}{name, courseDetails(name)})
		}
		if err := writeSheet(f, CoursesSheet, courseHeader, rows, headerStyle); err != nil {
			return err
		}
		if err := f.SetColWidth(CoursesSheet, "A", "A", 26); err != nil {
			return fmt.Errorf("failed to size courses columns: %w", err)
		}
		if err := f.SetColWidth(CoursesSheet, "B", "B", 80); err != nil {
			return fmt.Errorf("failed to size courses columns: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	rs.logger.Info("RosterService", "roster exported", map[string]interface{}{
		"students": len(students),
		"courses":  len(courses),
	})
	return nil
}

// ReadStudentRows returns the data rows of the Students sheet, header excluded.
// Used to verify exports; not an import path.
func ReadStudentRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(StudentsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", StudentsSheet, err)
	}
	if len(rows) == 0 {
		return nil, errors.New("students sheet has no header row")
	}
	return rows[1:], nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

// courseDetails strips the leading name from the course description
func courseDetails(name string) string {
	return strings.TrimPrefix(models.DescribeCourse(name), name+"\n\n")
}
